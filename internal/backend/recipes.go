package backend

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forkfeed/forkfeed/internal/models"
)

// Repository provides backend access for every collection
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db.DB}
}

// Recipes fetches the full recipe collection with ingredients and steps
// inline, in their stored order.
func (r *Repository) Recipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// RecipeAuthor returns the author id of a recipe, or "" if it does not exist
func (r *Repository) RecipeAuthor(ctx context.Context, recipeID string) (string, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).Select("author_id").First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return recipe.AuthorID, nil
}

// CreateRecipe inserts a recipe and its child rows in one transaction
func (r *Repository) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if len(recipe.Ingredients) > 0 {
			if err := tx.Create(&recipe.Ingredients).Error; err != nil {
				return err
			}
		}
		if len(recipe.Steps) > 0 {
			if err := tx.Create(&recipe.Steps).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateRecipe applies a partial update. Scalar fields present in the patch
// are updated; a present Ingredients or Steps field replaces the whole child
// sequence. Everything runs in one transaction.
func (r *Repository) UpdateRecipe(ctx context.Context, recipeID string, patch models.RecipePatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := scalarUpdates(patch)
		if len(updates) > 0 {
			if err := tx.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(updates).Error; err != nil {
				return err
			}
		}
		if patch.Ingredients != nil {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.Ingredient{}).Error; err != nil {
				return err
			}
			if len(*patch.Ingredients) > 0 {
				if err := tx.Create(patch.Ingredients).Error; err != nil {
					return err
				}
			}
		}
		if patch.Steps != nil {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.Step{}).Error; err != nil {
				return err
			}
			if len(*patch.Steps) > 0 {
				if err := tx.Create(patch.Steps).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// DeleteRecipe removes a recipe and its child rows
func (r *Repository) DeleteRecipe(ctx context.Context, recipeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.Step{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", recipeID).Delete(&models.Recipe{}).Error
	})
}

func scalarUpdates(patch models.RecipePatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Cuisine != nil {
		updates["cuisine"] = *patch.Cuisine
	}
	if patch.Difficulty != nil {
		updates["difficulty"] = *patch.Difficulty
	}
	if patch.PrepTime != nil {
		updates["prep_time"] = *patch.PrepTime
	}
	if patch.CookTime != nil {
		updates["cook_time"] = *patch.CookTime
	}
	if patch.Servings != nil {
		updates["servings"] = *patch.Servings
	}
	if patch.SourceURL != nil {
		updates["source_url"] = *patch.SourceURL
	}
	if patch.Tags != nil {
		updates["tags"] = *patch.Tags
	}
	if patch.Nutrition != nil {
		updates["nutrition"] = patch.Nutrition
	}
	return updates
}
