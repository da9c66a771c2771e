package models

import (
	"time"
)

// Follow represents a directed follow edge. No self-loops, no duplicate
// edges. This is the only relation with a dual storage mode: the remote
// table here, or the on-device mirror in internal/follow.
type Follow struct {
	FollowerID  string    `gorm:"type:uuid;primaryKey;column:follower_id"`
	FollowingID string    `gorm:"type:uuid;primaryKey;column:following_id"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Follower  *User `gorm:"foreignKey:FollowerID;references:ID"`
	Following *User `gorm:"foreignKey:FollowingID;references:ID"`
}

// TableName specifies the table name for Follow
func (Follow) TableName() string {
	return "follows"
}

// Favorite represents (user, recipe) favorite-set membership
type Favorite struct {
	UserID    string    `gorm:"type:uuid;primaryKey;column:user_id"`
	RecipeID  string    `gorm:"type:uuid;primaryKey;column:recipe_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	User   *User   `gorm:"foreignKey:UserID;references:ID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;references:ID"`
}

// TableName specifies the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}

// RecentlyViewed represents a view event, upserted on (user, recipe) so a
// repeat view refreshes the timestamp instead of adding a row.
type RecentlyViewed struct {
	UserID   string    `gorm:"type:uuid;primaryKey;column:user_id"`
	RecipeID string    `gorm:"type:uuid;primaryKey;column:recipe_id"`
	ViewedAt time.Time `gorm:"not null;column:viewed_at"`

	// Relationships
	User   *User   `gorm:"foreignKey:UserID;references:ID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;references:ID"`
}

// TableName specifies the table name for RecentlyViewed
func (RecentlyViewed) TableName() string {
	return "recently_viewed"
}

// RecentlyViewedLimit caps the read side of the recently-viewed collection
const RecentlyViewedLimit = 10
