package backend

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/forkfeed/forkfeed/internal/models"
)

// FavoriteRecipeIDs returns the favorite set for one user
func (r *Repository) FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// InsertFavorite adds a (user, recipe) favorite row
func (r *Repository) InsertFavorite(ctx context.Context, userID, recipeID string) error {
	fav := models.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&fav).Error
}

// DeleteFavorite removes a (user, recipe) favorite row
func (r *Repository) DeleteFavorite(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{}).Error
}

// RecentlyViewed returns at most the 10 most recent view rows for one user,
// newest first.
func (r *Repository) RecentlyViewed(ctx context.Context, userID string) ([]models.RecentlyViewed, error) {
	var rows []models.RecentlyViewed
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Limit(models.RecentlyViewedLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertRecentlyViewed records a view, refreshing the timestamp on conflict
func (r *Repository) UpsertRecentlyViewed(ctx context.Context, userID, recipeID string, viewedAt time.Time) error {
	row := models.RecentlyViewed{
		UserID:   userID,
		RecipeID: recipeID,
		ViewedAt: viewedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"viewed_at"}),
	}).Create(&row).Error
}

// FollowingIDs returns the ids a user follows
func (r *Repository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// InsertFollow adds a follow edge
func (r *Repository) InsertFollow(ctx context.Context, followerID, followingID string) error {
	follow := models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&follow).Error
}

// DeleteFollow removes a follow edge
func (r *Repository) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}
