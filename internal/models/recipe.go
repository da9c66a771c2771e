package models

import (
	"time"
)

// Difficulty levels for a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Recipe categories
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategoryDessert   Category = "dessert"
	CategorySnack     Category = "snack"
	CategoryDrink     Category = "drink"
)

// NutritionInfo holds per-serving nutrition facts
type NutritionInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Recipe represents a recipe with its ingredients and steps fetched inline.
// Ingredients and steps are owned exclusively by the recipe and are replaced
// as whole sequences on update, never patched row by row.
type Recipe struct {
	ID          string         `gorm:"type:uuid;primaryKey;column:id"`
	Title       string         `gorm:"type:varchar(255);not null;column:title"`
	Description string         `gorm:"type:text;column:description"`
	ImageURL    string         `gorm:"type:varchar(1024);column:image_url"`
	Category    Category       `gorm:"type:varchar(32);column:category"`
	Cuisine     string         `gorm:"type:varchar(64);column:cuisine"`
	Difficulty  Difficulty     `gorm:"type:varchar(16);column:difficulty"`
	PrepTime    int            `gorm:"not null;default:0;column:prep_time"`
	CookTime    int            `gorm:"not null;default:0;column:cook_time"`
	Servings    int            `gorm:"not null;default:1;column:servings"`
	Nutrition   *NutritionInfo `gorm:"serializer:json;type:text;column:nutrition"`
	Tags        []string       `gorm:"serializer:json;type:text;column:tags"`
	Rating      float64        `gorm:"type:float;not null;default:0;column:rating"`
	ReviewCount int            `gorm:"not null;default:0;column:review_count"`
	CreatedAt   time.Time      `gorm:"not null;column:created_at"`
	SourceURL   string         `gorm:"type:varchar(1024);column:source_url"`
	AuthorID    string         `gorm:"type:uuid;not null;index;column:author_id"`

	// Relationships
	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;references:ID"`
	Steps       []Step       `gorm:"foreignKey:RecipeID;references:ID"`
}

// TableName specifies the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// Ingredient represents one ingredient row of a recipe. Position preserves
// insertion order, which is also display and shopping order.
type Ingredient struct {
	ID       string `gorm:"type:uuid;primaryKey;column:id"`
	RecipeID string `gorm:"type:uuid;not null;index;column:recipe_id"`
	Name     string `gorm:"type:varchar(255);not null;column:name"`
	Amount   string `gorm:"type:varchar(64);column:amount"`
	Unit     string `gorm:"type:varchar(32);column:unit"`
	Position int    `gorm:"not null;default:0;column:position"`
}

// TableName specifies the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}

// Step represents one instruction step of a recipe. Order is 1-based and
// dense after any edit.
type Step struct {
	ID          string `gorm:"type:uuid;primaryKey;column:id"`
	RecipeID    string `gorm:"type:uuid;not null;index;column:recipe_id"`
	Order       int    `gorm:"not null;column:step_order"`
	Instruction string `gorm:"type:text;not null;column:instruction"`
	Duration    int    `gorm:"column:duration"`
	Tip         string `gorm:"type:text;column:tip"`
}

// TableName specifies the table name for Step
func (Step) TableName() string {
	return "steps"
}
