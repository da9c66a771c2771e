package sync

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forkfeed/forkfeed/internal/models"
	"github.com/forkfeed/forkfeed/pkg/telemetry"
)

// AddRecipe inserts a recipe owned by the session user, with its ingredient
// rows in dense 0-based order and its step rows in the caller-supplied
// order. Invalidates the recipes collection.
func (e *Engine) AddRecipe(ctx context.Context, recipe *models.Recipe) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	ctx, span := telemetry.StartSpan(ctx, "sync.add_recipe")
	defer span.End()

	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	recipe.AuthorID = sess.UserID
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = e.now()
	}
	stampIngredients(recipe.ID, recipe.Ingredients)
	stampSteps(recipe.ID, recipe.Steps)

	if err := e.backend.CreateRecipe(ctx, recipe); err != nil {
		e.logger.Error("add recipe failed", zap.String("recipe_id", recipe.ID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindRecipes)
	return nil
}

// UpdateRecipe applies a partial update to a recipe the session user
// authored. A present Ingredients or Steps field replaces the whole child
// sequence; omitted fields are untouched. Invalidates the recipes
// collection.
func (e *Engine) UpdateRecipe(ctx context.Context, recipeID string, patch models.RecipePatch) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	ctx, span := telemetry.StartSpan(ctx, "sync.update_recipe")
	defer span.End()

	if err := e.requireAuthor(ctx, sess, recipeID); err != nil {
		return err
	}

	if patch.Ingredients != nil {
		stampIngredients(recipeID, *patch.Ingredients)
	}
	if patch.Steps != nil {
		stampSteps(recipeID, *patch.Steps)
	}

	if err := e.backend.UpdateRecipe(ctx, recipeID, patch); err != nil {
		e.logger.Error("update recipe failed", zap.String("recipe_id", recipeID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindRecipes)
	return nil
}

// DeleteRecipe removes a recipe the session user authored. Invalidates
// recipes, favorites and recently-viewed so the recipe disappears from every
// derived view at once.
func (e *Engine) DeleteRecipe(ctx context.Context, recipeID string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	ctx, span := telemetry.StartSpan(ctx, "sync.delete_recipe")
	defer span.End()

	if err := e.requireAuthor(ctx, sess, recipeID); err != nil {
		return err
	}

	if err := e.backend.DeleteRecipe(ctx, recipeID); err != nil {
		e.logger.Error("delete recipe failed", zap.String("recipe_id", recipeID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindRecipes, KindFavorites, KindRecents)
	return nil
}

func (e *Engine) requireAuthor(ctx context.Context, sess *Session, recipeID string) error {
	author, err := e.backend.RecipeAuthor(ctx, recipeID)
	if err != nil {
		return backendErr(err)
	}
	if author == "" {
		return fmt.Errorf("%w: recipe %s not found", ErrValidation, recipeID)
	}
	if author != sess.UserID {
		return ErrNotAuthorized
	}
	return nil
}

// stampIngredients assigns ids, ownership and dense 0-based positions
func stampIngredients(recipeID string, ingredients []models.Ingredient) {
	for i := range ingredients {
		if ingredients[i].ID == "" {
			ingredients[i].ID = uuid.NewString()
		}
		ingredients[i].RecipeID = recipeID
		ingredients[i].Position = i
	}
}

// stampSteps assigns ids and ownership, keeping the caller-supplied order
func stampSteps(recipeID string, steps []models.Step) {
	for i := range steps {
		if steps[i].ID == "" {
			steps[i].ID = uuid.NewString()
		}
		steps[i].RecipeID = recipeID
		if steps[i].Order == 0 {
			steps[i].Order = i + 1
		}
	}
}
