package models

import (
	"time"
)

// MealType identifies a meal-plan slot within a day
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// MealPlanEntry assigns a recipe to a (date, mealType) slot. Multiple
// entries may share a slot and keep their insertion order, via created_at.
// Date is a calendar day in YYYY-MM-DD form with no time component.
type MealPlanEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id"`
	UserID    string    `gorm:"type:uuid;not null;index;column:user_id"`
	Date      string    `gorm:"type:date;not null;column:date"`
	MealType  MealType  `gorm:"type:varchar(16);not null;column:meal_type"`
	RecipeID  string    `gorm:"type:uuid;not null;column:recipe_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for MealPlanEntry
func (MealPlanEntry) TableName() string {
	return "meal_plan_entries"
}
