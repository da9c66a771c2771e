package models

import (
	"time"
)

// Review represents an append-only recipe review. Ratings are integers 1-5.
type Review struct {
	ID         string    `gorm:"type:uuid;primaryKey;column:id"`
	RecipeID   string    `gorm:"type:uuid;not null;index;column:recipe_id"`
	Rating     int       `gorm:"not null;column:rating"`
	Comment    string    `gorm:"type:text;column:comment"`
	AuthorName string    `gorm:"type:varchar(64);column:author_name"`
	CreatedAt  time.Time `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}

// Review rating bounds
const (
	MinRating = 1
	MaxRating = 5
)
