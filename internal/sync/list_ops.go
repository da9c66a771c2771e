package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forkfeed/forkfeed/internal/models"
)

// AddToShoppingList batch-inserts one row per ingredient, stamping recipe
// provenance when given. Invalidates the shopping-list collection.
func (e *Engine) AddToShoppingList(ctx context.Context, ingredients []models.Ingredient, recipeID, recipeName string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("%w: no ingredients", ErrValidation)
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	now := e.now()
	items := make([]models.ShoppingListItem, 0, len(ingredients))
	for i, ing := range ingredients {
		items = append(items, models.ShoppingListItem{
			ID:         uuid.NewString(),
			UserID:     sess.UserID,
			Name:       ing.Name,
			Amount:     ing.Amount,
			Unit:       ing.Unit,
			RecipeID:   recipeID,
			RecipeName: recipeName,
			IsChecked:  false,
			Position:   i,
			AddedAt:    now,
		})
	}
	if err := e.backend.InsertShoppingItems(ctx, items); err != nil {
		e.logger.Error("add shopping items failed", zap.Int("count", len(items)), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindShoppingList)
	return nil
}

// ToggleShoppingItem flips the checked flag of exactly one item owned by the
// session user. Invalidates the shopping-list collection.
func (e *Engine) ToggleShoppingItem(ctx context.Context, itemID string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	if err := e.Fetch(ctx, KindShoppingList); err != nil {
		return err
	}

	var current *models.ShoppingListItem
	for _, item := range e.store.ShoppingItems() {
		if item.ID == itemID {
			it := item
			current = &it
			break
		}
	}
	if current == nil {
		return fmt.Errorf("%w: shopping item %s not found", ErrValidation, itemID)
	}

	if err := e.backend.SetShoppingItemChecked(ctx, sess.UserID, itemID, !current.IsChecked); err != nil {
		e.logger.Error("toggle shopping item failed", zap.String("item_id", itemID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindShoppingList)
	return nil
}

// RemoveShoppingItem deletes one item by id. Invalidates the shopping-list
// collection.
func (e *Engine) RemoveShoppingItem(ctx context.Context, itemID string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	if err := e.backend.DeleteShoppingItem(ctx, sess.UserID, itemID); err != nil {
		e.logger.Error("remove shopping item failed", zap.String("item_id", itemID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindShoppingList)
	return nil
}

// ClearCheckedShoppingItems deletes every checked item for the session user.
// Invalidates the shopping-list collection.
func (e *Engine) ClearCheckedShoppingItems(ctx context.Context) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	if err := e.backend.DeleteCheckedShoppingItems(ctx, sess.UserID); err != nil {
		e.logger.Error("clear checked shopping items failed", zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindShoppingList)
	return nil
}

// ClearShoppingList deletes every item for the session user. Invalidates the
// shopping-list collection.
func (e *Engine) ClearShoppingList(ctx context.Context) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	if err := e.backend.ClearShoppingList(ctx, sess.UserID); err != nil {
		e.logger.Error("clear shopping list failed", zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindShoppingList)
	return nil
}

// AddMealPlanEntry assigns a recipe to a (date, mealType) slot. Multiple
// entries may share a slot. Invalidates the meal-plan collection.
func (e *Engine) AddMealPlanEntry(ctx context.Context, date string, mealType models.MealType, recipeID string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	switch mealType {
	case models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner:
	default:
		return fmt.Errorf("%w: unknown meal type %q", ErrValidation, mealType)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrValidation, date)
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	entry := &models.MealPlanEntry{
		ID:        uuid.NewString(),
		UserID:    sess.UserID,
		Date:      date,
		MealType:  mealType,
		RecipeID:  recipeID,
		CreatedAt: e.now(),
	}
	if err := e.backend.InsertMealPlanEntry(ctx, entry); err != nil {
		e.logger.Error("add meal plan entry failed", zap.String("date", date), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindMealPlan)
	return nil
}

// RemoveMealPlanEntry deletes one entry by id. Invalidates the meal-plan
// collection.
func (e *Engine) RemoveMealPlanEntry(ctx context.Context, entryID string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	if err := e.backend.DeleteMealPlanEntry(ctx, sess.UserID, entryID); err != nil {
		e.logger.Error("remove meal plan entry failed", zap.String("entry_id", entryID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindMealPlan)
	return nil
}
