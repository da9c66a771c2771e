package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/forkfeed/forkfeed/internal/models"
	"github.com/forkfeed/forkfeed/pkg/telemetry"
)

// Fetch materializes one collection into the entity store. A fresh (kind,
// scope) entry is served from the store without a backend round trip; stale
// and missing entries trigger a re-fetch. Fetch failures are recorded as a
// per-collection error state and returned on every read until the caller
// retries by invalidating.
func (e *Engine) Fetch(ctx context.Context, kind Kind) error {
	key := e.keyFor(kind)

	e.mu.Lock()
	if ent, ok := e.entries[key]; ok {
		switch ent.state {
		case stateFresh:
			e.mu.Unlock()
			return nil
		case stateError:
			err := ent.err
			e.mu.Unlock()
			return err
		}
	}
	e.mu.Unlock()

	ctx, span := telemetry.StartSpan(ctx, "sync.fetch."+string(kind))
	defer span.End()

	err := e.fetchInto(ctx, kind, key.Scope)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		err = backendErr(err)
		e.entries[key] = &entry{state: stateError, err: err}
		e.logger.Warn("Collection fetch failed",
			zap.String("kind", string(kind)),
			zap.Error(err))
		return err
	}
	e.entries[key] = &entry{state: stateFresh, fetchedAt: e.now()}
	return nil
}

// FetchAll materializes every collection, returning the first error but
// attempting all kinds so one failing collection does not block the rest.
func (e *Engine) FetchAll(ctx context.Context) error {
	var firstErr error
	for _, kind := range AllKinds {
		if err := e.Fetch(ctx, kind); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// FetchError returns the recorded error state for a collection, or nil
func (e *Engine) FetchError(kind Kind) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ent, ok := e.entries[e.keyFor(kind)]; ok && ent.state == stateError {
		return ent.err
	}
	return nil
}

// Invalidate marks collections stale so the next read re-fetches. Mirrored
// copies are dropped alongside.
func (e *Engine) Invalidate(ctx context.Context, kinds ...Kind) {
	e.mu.Lock()
	for _, kind := range kinds {
		e.entries[e.keyFor(kind)] = &entry{state: stateStale}
	}
	e.mu.Unlock()

	for _, kind := range kinds {
		key := e.keyFor(kind)
		if err := e.mirror.Drop(ctx, string(kind), key.Scope); err != nil {
			continue // mirror is best-effort
		}
	}
}

// fetchInto runs the collection fetcher and replaces the store collection.
// The follow kind always goes through the selected follow source, never
// directly to the backend, so remote/local mode selection stays in one
// place.
func (e *Engine) fetchInto(ctx context.Context, kind Kind, scope string) error {
	if kind == KindFollows {
		ids, err := e.follows.FollowingIDs(ctx)
		if err != nil {
			return err
		}
		e.store.ReplaceFollowing(ids)
		e.mirrorPut(ctx, kind, scope, ids)
		return nil
	}

	// Scoped collections are empty without an actor; no backend call needed.
	if scopedKinds[kind] && scope == "" {
		e.replaceEmpty(kind)
		return nil
	}

	if e.backend == nil {
		return fmt.Errorf("backend not configured")
	}

	switch kind {
	case KindRecipes:
		recipes, err := e.backend.Recipes(ctx)
		if err != nil {
			return err
		}
		e.store.ReplaceRecipes(recipes)
		e.mirrorPut(ctx, kind, scope, recipes)
	case KindUsers:
		users, err := e.backend.Users(ctx)
		if err != nil {
			return err
		}
		e.store.ReplaceUsers(users)
		e.mirrorPut(ctx, kind, scope, users)
	case KindFavorites:
		ids, err := e.backend.FavoriteRecipeIDs(ctx, scope)
		if err != nil {
			return err
		}
		e.store.ReplaceFavorites(ids)
		e.mirrorPut(ctx, kind, scope, ids)
	case KindRecents:
		rows, err := e.backend.RecentlyViewed(ctx, scope)
		if err != nil {
			return err
		}
		e.store.ReplaceRecents(rows)
		e.mirrorPut(ctx, kind, scope, rows)
	case KindReviews:
		reviews, err := e.backend.Reviews(ctx)
		if err != nil {
			return err
		}
		e.store.ReplaceReviews(reviews)
		e.mirrorPut(ctx, kind, scope, reviews)
	case KindShoppingList:
		items, err := e.backend.ShoppingList(ctx, scope)
		if err != nil {
			return err
		}
		e.store.ReplaceShopping(items)
		e.mirrorPut(ctx, kind, scope, items)
	case KindMealPlan:
		entries, err := e.backend.MealPlanEntries(ctx, scope)
		if err != nil {
			return err
		}
		e.store.ReplaceMealPlan(entries)
		e.mirrorPut(ctx, kind, scope, entries)
	case KindShares:
		shares, err := e.backend.SharedRecipes(ctx, scope)
		if err != nil {
			return err
		}
		e.store.ReplaceShares(shares)
		e.mirrorPut(ctx, kind, scope, shares)
	default:
		return fmt.Errorf("unknown collection kind %q", kind)
	}
	return nil
}

func (e *Engine) replaceEmpty(kind Kind) {
	switch kind {
	case KindFavorites:
		e.store.ReplaceFavorites(nil)
	case KindRecents:
		e.store.ReplaceRecents(nil)
	case KindShoppingList:
		e.store.ReplaceShopping(nil)
	case KindMealPlan:
		e.store.ReplaceMealPlan(nil)
	case KindShares:
		e.store.ReplaceShares(nil)
	}
}

func (e *Engine) mirrorPut(ctx context.Context, kind Kind, scope string, collection interface{}) {
	if err := e.mirror.Put(ctx, string(kind), scope, collection); err != nil {
		return // mirror is best-effort
	}
}

// WarmStart loads mirrored collections into the store before the first
// backend round trip. Entries stay stale so the next read still re-fetches;
// this only gives a restarted client something to render.
func (e *Engine) WarmStart(ctx context.Context) {
	scope := ""
	if e.session != nil {
		scope = e.session.UserID
	}

	var recipes []models.Recipe
	if err := e.mirror.Get(ctx, string(KindRecipes), "", &recipes); err == nil {
		e.store.ReplaceRecipes(recipes)
	}
	var users []models.User
	if err := e.mirror.Get(ctx, string(KindUsers), "", &users); err == nil {
		e.store.ReplaceUsers(users)
	}
	var reviews []models.Review
	if err := e.mirror.Get(ctx, string(KindReviews), "", &reviews); err == nil {
		e.store.ReplaceReviews(reviews)
	}
	if scope == "" {
		return
	}
	var favoriteIDs []string
	if err := e.mirror.Get(ctx, string(KindFavorites), scope, &favoriteIDs); err == nil {
		e.store.ReplaceFavorites(favoriteIDs)
	}
	var recents []models.RecentlyViewed
	if err := e.mirror.Get(ctx, string(KindRecents), scope, &recents); err == nil {
		e.store.ReplaceRecents(recents)
	}
	var items []models.ShoppingListItem
	if err := e.mirror.Get(ctx, string(KindShoppingList), scope, &items); err == nil {
		e.store.ReplaceShopping(items)
	}
	var entries []models.MealPlanEntry
	if err := e.mirror.Get(ctx, string(KindMealPlan), scope, &entries); err == nil {
		e.store.ReplaceMealPlan(entries)
	}
	var shares []models.SharedRecipe
	if err := e.mirror.Get(ctx, string(KindShares), scope, &shares); err == nil {
		e.store.ReplaceShares(shares)
	}
}
