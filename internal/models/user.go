package models

import (
	"time"
)

// User represents a Forkfeed user profile
type User struct {
	ID             string    `gorm:"type:uuid;primaryKey;column:id"`
	Username       string    `gorm:"type:varchar(32);not null;uniqueIndex:users_ux1;column:username"`
	DisplayName    string    `gorm:"type:varchar(64);column:display_name"`
	AvatarURL      string    `gorm:"type:varchar(1024);column:avatar_url"`
	Bio            string    `gorm:"type:varchar(160);column:bio"`
	RecipesCount   int       `gorm:"not null;default:0;column:recipes_count"`
	FollowersCount int       `gorm:"not null;default:0;column:followers_count"`
	FollowingCount int       `gorm:"not null;default:0;column:following_count"`
	IsVerified     bool      `gorm:"not null;default:false;column:is_verified"`
	JoinedAt       time.Time `gorm:"not null;column:joined_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
