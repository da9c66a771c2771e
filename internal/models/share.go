package models

import (
	"time"
)

// SharedRecipe represents one recipe shared from one user to another
type SharedRecipe struct {
	ID         string    `gorm:"type:uuid;primaryKey;column:id"`
	RecipeID   string    `gorm:"type:uuid;not null;column:recipe_id"`
	FromUserID string    `gorm:"type:uuid;not null;index;column:from_user_id"`
	ToUserID   string    `gorm:"type:uuid;not null;index;column:to_user_id"`
	Message    string    `gorm:"type:text;column:message"`
	SharedAt   time.Time `gorm:"not null;column:shared_at"`
}

// TableName specifies the table name for SharedRecipe
func (SharedRecipe) TableName() string {
	return "shared_recipes"
}
