package sync

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/forkfeed/forkfeed/internal/models"
)

// fakeBackend is an in-memory Backend for engine tests. It counts fetches
// per kind and can be told to fail specific kinds.
type fakeBackend struct {
	recipes  []models.Recipe
	favs     []models.Favorite
	recents  []models.RecentlyViewed
	reviews  []models.Review
	shopping []models.ShoppingListItem
	mealplan []models.MealPlanEntry
	shares   []models.SharedRecipe
	follows  []models.Follow

	fetchCalls map[Kind]int
	failFetch  map[Kind]error
}

func followEdge(follower, following string) models.Follow {
	return models.Follow{FollowerID: follower, FollowingID: following}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		fetchCalls: map[Kind]int{},
		failFetch:  map[Kind]error{},
	}
}

func (f *fakeBackend) fetched(kind Kind) error {
	f.fetchCalls[kind]++
	return f.failFetch[kind]
}

func (f *fakeBackend) Recipes(ctx context.Context) ([]models.Recipe, error) {
	if err := f.fetched(KindRecipes); err != nil {
		return nil, err
	}
	return append([]models.Recipe(nil), f.recipes...), nil
}

func (f *fakeBackend) RecipeAuthor(ctx context.Context, recipeID string) (string, error) {
	for _, r := range f.recipes {
		if r.ID == recipeID {
			return r.AuthorID, nil
		}
	}
	return "", nil
}

func (f *fakeBackend) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	f.recipes = append(f.recipes, *recipe)
	return nil
}

func (f *fakeBackend) UpdateRecipe(ctx context.Context, recipeID string, patch models.RecipePatch) error {
	for i := range f.recipes {
		if f.recipes[i].ID != recipeID {
			continue
		}
		if patch.Title != nil {
			f.recipes[i].Title = *patch.Title
		}
		if patch.Description != nil {
			f.recipes[i].Description = *patch.Description
		}
		if patch.Servings != nil {
			f.recipes[i].Servings = *patch.Servings
		}
		if patch.Ingredients != nil {
			f.recipes[i].Ingredients = append([]models.Ingredient(nil), *patch.Ingredients...)
		}
		if patch.Steps != nil {
			f.recipes[i].Steps = append([]models.Step(nil), *patch.Steps...)
		}
		return nil
	}
	return fmt.Errorf("recipe %s not found", recipeID)
}

func (f *fakeBackend) DeleteRecipe(ctx context.Context, recipeID string) error {
	next := f.recipes[:0]
	for _, r := range f.recipes {
		if r.ID != recipeID {
			next = append(next, r)
		}
	}
	f.recipes = next
	return nil
}

func (f *fakeBackend) Users(ctx context.Context) ([]models.User, error) {
	if err := f.fetched(KindUsers); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeBackend) FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	if err := f.fetched(KindFavorites); err != nil {
		return nil, err
	}
	var ids []string
	for _, fav := range f.favs {
		if fav.UserID == userID {
			ids = append(ids, fav.RecipeID)
		}
	}
	return ids, nil
}

func (f *fakeBackend) InsertFavorite(ctx context.Context, userID, recipeID string) error {
	f.favs = append(f.favs, models.Favorite{UserID: userID, RecipeID: recipeID})
	return nil
}

func (f *fakeBackend) DeleteFavorite(ctx context.Context, userID, recipeID string) error {
	next := f.favs[:0]
	for _, fav := range f.favs {
		if fav.UserID != userID || fav.RecipeID != recipeID {
			next = append(next, fav)
		}
	}
	f.favs = next
	return nil
}

func (f *fakeBackend) RecentlyViewed(ctx context.Context, userID string) ([]models.RecentlyViewed, error) {
	if err := f.fetched(KindRecents); err != nil {
		return nil, err
	}
	var rows []models.RecentlyViewed
	for _, row := range f.recents {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ViewedAt.After(rows[j].ViewedAt) })
	if len(rows) > models.RecentlyViewedLimit {
		rows = rows[:models.RecentlyViewedLimit]
	}
	return rows, nil
}

func (f *fakeBackend) UpsertRecentlyViewed(ctx context.Context, userID, recipeID string, viewedAt time.Time) error {
	for i := range f.recents {
		if f.recents[i].UserID == userID && f.recents[i].RecipeID == recipeID {
			f.recents[i].ViewedAt = viewedAt
			return nil
		}
	}
	f.recents = append(f.recents, models.RecentlyViewed{UserID: userID, RecipeID: recipeID, ViewedAt: viewedAt})
	return nil
}

func (f *fakeBackend) Reviews(ctx context.Context) ([]models.Review, error) {
	if err := f.fetched(KindReviews); err != nil {
		return nil, err
	}
	return append([]models.Review(nil), f.reviews...), nil
}

func (f *fakeBackend) InsertReview(ctx context.Context, review *models.Review) error {
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeBackend) ShoppingList(ctx context.Context, userID string) ([]models.ShoppingListItem, error) {
	if err := f.fetched(KindShoppingList); err != nil {
		return nil, err
	}
	var items []models.ShoppingListItem
	for _, item := range f.shopping {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].AddedAt.Before(items[j].AddedAt)
		}
		return items[i].Position < items[j].Position
	})
	return items, nil
}

func (f *fakeBackend) InsertShoppingItems(ctx context.Context, items []models.ShoppingListItem) error {
	f.shopping = append(f.shopping, items...)
	return nil
}

func (f *fakeBackend) SetShoppingItemChecked(ctx context.Context, userID, itemID string, checked bool) error {
	for i := range f.shopping {
		if f.shopping[i].ID == itemID && f.shopping[i].UserID == userID {
			f.shopping[i].IsChecked = checked
		}
	}
	return nil
}

func (f *fakeBackend) DeleteShoppingItem(ctx context.Context, userID, itemID string) error {
	next := f.shopping[:0]
	for _, item := range f.shopping {
		if item.ID != itemID || item.UserID != userID {
			next = append(next, item)
		}
	}
	f.shopping = next
	return nil
}

func (f *fakeBackend) DeleteCheckedShoppingItems(ctx context.Context, userID string) error {
	next := f.shopping[:0]
	for _, item := range f.shopping {
		if item.UserID != userID || !item.IsChecked {
			next = append(next, item)
		}
	}
	f.shopping = next
	return nil
}

func (f *fakeBackend) ClearShoppingList(ctx context.Context, userID string) error {
	next := f.shopping[:0]
	for _, item := range f.shopping {
		if item.UserID != userID {
			next = append(next, item)
		}
	}
	f.shopping = next
	return nil
}

func (f *fakeBackend) MealPlanEntries(ctx context.Context, userID string) ([]models.MealPlanEntry, error) {
	if err := f.fetched(KindMealPlan); err != nil {
		return nil, err
	}
	var entries []models.MealPlanEntry
	for _, e := range f.mealplan {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries, nil
}

func (f *fakeBackend) InsertMealPlanEntry(ctx context.Context, entry *models.MealPlanEntry) error {
	f.mealplan = append(f.mealplan, *entry)
	return nil
}

func (f *fakeBackend) DeleteMealPlanEntry(ctx context.Context, userID, entryID string) error {
	next := f.mealplan[:0]
	for _, e := range f.mealplan {
		if e.ID != entryID || e.UserID != userID {
			next = append(next, e)
		}
	}
	f.mealplan = next
	return nil
}

func (f *fakeBackend) SharedRecipes(ctx context.Context, userID string) ([]models.SharedRecipe, error) {
	if err := f.fetched(KindShares); err != nil {
		return nil, err
	}
	var shares []models.SharedRecipe
	for _, s := range f.shares {
		if s.FromUserID == userID || s.ToUserID == userID {
			shares = append(shares, s)
		}
	}
	return shares, nil
}

func (f *fakeBackend) InsertSharedRecipes(ctx context.Context, shares []models.SharedRecipe) error {
	f.shares = append(f.shares, shares...)
	return nil
}

func (f *fakeBackend) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	for _, edge := range f.follows {
		if edge.FollowerID == userID {
			ids = append(ids, edge.FollowingID)
		}
	}
	return ids, nil
}

func (f *fakeBackend) InsertFollow(ctx context.Context, followerID, followingID string) error {
	f.follows = append(f.follows, models.Follow{FollowerID: followerID, FollowingID: followingID})
	return nil
}

func (f *fakeBackend) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	next := f.follows[:0]
	for _, edge := range f.follows {
		if edge.FollowerID != followerID || edge.FollowingID != followingID {
			next = append(next, edge)
		}
	}
	f.follows = next
	return nil
}
