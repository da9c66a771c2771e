package sync

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forkfeed/forkfeed/internal/models"
	"github.com/forkfeed/forkfeed/pkg/telemetry"
)

// ToggleFavorite flips the (user, recipe) favorite membership. Invalidates
// the favorites collection.
func (e *Engine) ToggleFavorite(ctx context.Context, recipeID string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	ctx, span := telemetry.StartSpan(ctx, "sync.toggle_favorite")
	defer span.End()

	// Membership comes from the cached favorite set
	if err := e.Fetch(ctx, KindFavorites); err != nil {
		return err
	}

	if e.store.IsFavorite(recipeID) {
		err = e.backend.DeleteFavorite(ctx, sess.UserID, recipeID)
	} else {
		err = e.backend.InsertFavorite(ctx, sess.UserID, recipeID)
	}
	if err != nil {
		e.logger.Error("toggle favorite failed", zap.String("recipe_id", recipeID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindFavorites)
	return nil
}

// AddRecentlyViewed records a view of a recipe, refreshing the timestamp if
// the recipe was viewed before. Invalidates the recently-viewed collection.
func (e *Engine) AddRecentlyViewed(ctx context.Context, recipeID string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	if err := e.backend.UpsertRecentlyViewed(ctx, sess.UserID, recipeID, e.now()); err != nil {
		e.logger.Error("record view failed", zap.String("recipe_id", recipeID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindRecents)
	return nil
}

// AddReview appends a review. Ratings outside 1-5 are rejected. Invalidates
// reviews and recipes, since recipe-level rating rollups depend on reviews.
func (e *Engine) AddReview(ctx context.Context, recipeID string, rating int, comment string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("%w: rating %d out of range", ErrValidation, rating)
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	authorName := sess.UserID
	if user, ok := e.store.UserByID(sess.UserID); ok {
		authorName = user.DisplayName
	}

	review := &models.Review{
		ID:         uuid.NewString(),
		RecipeID:   recipeID,
		Rating:     rating,
		Comment:    comment,
		AuthorName: authorName,
		CreatedAt:  e.now(),
	}
	if err := e.backend.InsertReview(ctx, review); err != nil {
		e.logger.Error("add review failed", zap.String("recipe_id", recipeID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindReviews, KindRecipes)
	return nil
}

// ToggleFollow flips follow-edge membership through the selected follow
// source: the backend table in remote mode, or the persisted on-device list
// otherwise. Self-follows are rejected. Invalidates the follows collection.
func (e *Engine) ToggleFollow(ctx context.Context, userID string) error {
	if e.session != nil && e.session.UserID == userID {
		return fmt.Errorf("%w: cannot follow yourself", ErrValidation)
	}

	ctx, span := telemetry.StartSpan(ctx, "sync.toggle_follow")
	defer span.End()

	following, err := e.follows.Toggle(ctx, userID)
	if err != nil {
		e.logger.Error("toggle follow failed", zap.String("user_id", userID), zap.Error(err))
		return backendErr(err)
	}

	e.logger.Debug("follow toggled",
		zap.String("user_id", userID),
		zap.Bool("following", following),
		zap.String("mode", string(e.follows.Mode())))

	e.Invalidate(ctx, KindFollows)
	return nil
}

// ShareRecipe inserts one share row per target user in a single batch.
// Invalidates the shared-recipes collection.
func (e *Engine) ShareRecipe(ctx context.Context, recipeID string, toUserIDs []string, message string) error {
	sess, err := e.requireSession()
	if err != nil {
		return err
	}
	if len(toUserIDs) == 0 {
		return fmt.Errorf("%w: no target users", ErrValidation)
	}
	if e.backend == nil {
		return backendErr(fmt.Errorf("backend not configured"))
	}

	now := e.now()
	shares := make([]models.SharedRecipe, 0, len(toUserIDs))
	for _, toUserID := range toUserIDs {
		shares = append(shares, models.SharedRecipe{
			ID:         uuid.NewString(),
			RecipeID:   recipeID,
			FromUserID: sess.UserID,
			ToUserID:   toUserID,
			Message:    message,
			SharedAt:   now,
		})
	}
	if err := e.backend.InsertSharedRecipes(ctx, shares); err != nil {
		e.logger.Error("share recipe failed", zap.String("recipe_id", recipeID), zap.Error(err))
		return backendErr(err)
	}

	e.Invalidate(ctx, KindShares)
	return nil
}
