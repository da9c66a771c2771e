package backend

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/forkfeed/forkfeed/internal/models"
)

// Users fetches the user collection
func (r *Repository) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID retrieves one user, or nil if not found
func (r *Repository) UserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Reviews fetches the review collection
func (r *Repository) Reviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// InsertReview appends a review. Reviews have no edit or delete.
func (r *Repository) InsertReview(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ShoppingList fetches one user's shopping list in insertion order: batches
// by added_at, rows within a batch by position.
func (r *Repository) ShoppingList(ctx context.Context, userID string) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC, position ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// InsertShoppingItems bulk-inserts shopping list rows
func (r *Repository) InsertShoppingItems(ctx context.Context, items []models.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// SetShoppingItemChecked flips the checked flag of exactly one row,
// scoped to its owner.
func (r *Repository) SetShoppingItemChecked(ctx context.Context, userID, itemID string, checked bool) error {
	return r.db.WithContext(ctx).
		Model(&models.ShoppingListItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("is_checked", checked).Error
}

// DeleteShoppingItem removes one row by id, scoped to its owner
func (r *Repository) DeleteShoppingItem(ctx context.Context, userID, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.ShoppingListItem{}).Error
}

// DeleteCheckedShoppingItems removes every checked row for one user
func (r *Repository) DeleteCheckedShoppingItems(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND is_checked = ?", userID, true).
		Delete(&models.ShoppingListItem{}).Error
}

// ClearShoppingList removes every row for one user
func (r *Repository) ClearShoppingList(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ShoppingListItem{}).Error
}

// MealPlanEntries fetches one user's meal plan in insertion order
func (r *Repository) MealPlanEntries(ctx context.Context, userID string) ([]models.MealPlanEntry, error) {
	var entries []models.MealPlanEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// InsertMealPlanEntry adds one slot assignment
func (r *Repository) InsertMealPlanEntry(ctx context.Context, entry *models.MealPlanEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// DeleteMealPlanEntry removes one entry by id, scoped to its owner
func (r *Repository) DeleteMealPlanEntry(ctx context.Context, userID, entryID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.MealPlanEntry{}).Error
}

// SharedRecipes fetches shares sent or received by one user
func (r *Repository) SharedRecipes(ctx context.Context, userID string) ([]models.SharedRecipe, error) {
	var shares []models.SharedRecipe
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("shared_at DESC").
		Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// InsertSharedRecipes bulk-inserts one share row per target user
func (r *Repository) InsertSharedRecipes(ctx context.Context, shares []models.SharedRecipe) error {
	if len(shares) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&shares).Error
}
