package models

import (
	"time"
)

// ShoppingListItem represents one shopping-list row. RecipeID/RecipeName
// record provenance when the item came from a recipe; both are empty for
// manually added items. Position orders rows within one added batch; the
// list order is (added_at, position) ascending.
type ShoppingListItem struct {
	ID         string    `gorm:"type:uuid;primaryKey;column:id"`
	UserID     string    `gorm:"type:uuid;not null;index;column:user_id"`
	Name       string    `gorm:"type:varchar(255);not null;column:name"`
	Amount     string    `gorm:"type:varchar(64);column:amount"`
	Unit       string    `gorm:"type:varchar(32);column:unit"`
	RecipeID   string    `gorm:"type:uuid;column:recipe_id"`
	RecipeName string    `gorm:"type:varchar(255);column:recipe_name"`
	IsChecked  bool      `gorm:"not null;default:false;column:is_checked"`
	Position   int       `gorm:"not null;default:0;column:position"`
	AddedAt    time.Time `gorm:"not null;column:added_at"`
}

// TableName specifies the table name for ShoppingListItem
func (ShoppingListItem) TableName() string {
	return "shopping_list_items"
}
