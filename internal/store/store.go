package store

import (
	"sync"

	"github.com/forkfeed/forkfeed/internal/models"
)

// Store holds the normalized in-memory entity collections the derived views
// read from. It is populated only by the query layer (or the local follow
// mirror) through whole-collection replacement; mutations never write here
// directly, they invalidate and let the next fetch repopulate.
type Store struct {
	mu sync.RWMutex

	recipes     map[string]models.Recipe
	recipeOrder []string

	users     map[string]models.User
	userOrder []string

	favorites map[string]bool
	following map[string]bool

	recents  []models.RecentlyViewed
	reviews  []models.Review
	shopping []models.ShoppingListItem
	mealPlan []models.MealPlanEntry
	shares   []models.SharedRecipe
}

// New creates an empty store
func New() *Store {
	return &Store{
		recipes:   map[string]models.Recipe{},
		users:     map[string]models.User{},
		favorites: map[string]bool{},
		following: map[string]bool{},
	}
}

// ReplaceRecipes swaps the recipe collection atomically, preserving the
// fetched order.
func (s *Store) ReplaceRecipes(recipes []models.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = make(map[string]models.Recipe, len(recipes))
	s.recipeOrder = make([]string, 0, len(recipes))
	for _, r := range recipes {
		s.recipes[r.ID] = r
		s.recipeOrder = append(s.recipeOrder, r.ID)
	}
}

// ReplaceUsers swaps the user collection atomically
func (s *Store) ReplaceUsers(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]models.User, len(users))
	s.userOrder = make([]string, 0, len(users))
	for _, u := range users {
		s.users[u.ID] = u
		s.userOrder = append(s.userOrder, u.ID)
	}
}

// ReplaceFavorites swaps the favorite set atomically
func (s *Store) ReplaceFavorites(recipeIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = make(map[string]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		s.favorites[id] = true
	}
}

// ReplaceFollowing swaps the followed-user set atomically
func (s *Store) ReplaceFollowing(userIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.following = make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		s.following[id] = true
	}
}

// ReplaceRecents swaps the recently-viewed collection atomically. Rows are
// expected newest-first and already capped by the fetcher.
func (s *Store) ReplaceRecents(rows []models.RecentlyViewed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recents = append([]models.RecentlyViewed(nil), rows...)
}

// ReplaceReviews swaps the review collection atomically
func (s *Store) ReplaceReviews(reviews []models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append([]models.Review(nil), reviews...)
}

// ReplaceShopping swaps the shopping-list collection atomically
func (s *Store) ReplaceShopping(items []models.ShoppingListItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopping = append([]models.ShoppingListItem(nil), items...)
}

// ReplaceMealPlan swaps the meal-plan collection atomically
func (s *Store) ReplaceMealPlan(entries []models.MealPlanEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mealPlan = append([]models.MealPlanEntry(nil), entries...)
}

// ReplaceShares swaps the shared-recipe collection atomically
func (s *Store) ReplaceShares(shares []models.SharedRecipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shares = append([]models.SharedRecipe(nil), shares...)
}

// Recipes returns the recipe collection in fetched order
func (s *Store) Recipes() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Recipe, 0, len(s.recipeOrder))
	for _, id := range s.recipeOrder {
		out = append(out, s.recipes[id])
	}
	return out
}

// RecipeByID looks up one recipe
func (s *Store) RecipeByID(id string) (models.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recipes[id]
	return r, ok
}

// Users returns the user collection in fetched order
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out
}

// UserByID looks up one user
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// FavoriteSet returns a copy of the favorite-recipe id set
func (s *Store) FavoriteSet() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.favorites))
	for id := range s.favorites {
		out[id] = true
	}
	return out
}

// IsFavorite tests favorite-set membership
func (s *Store) IsFavorite(recipeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites[recipeID]
}

// FollowingSet returns a copy of the followed-user id set
func (s *Store) FollowingSet() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.following))
	for id := range s.following {
		out[id] = true
	}
	return out
}

// IsFollowing tests follow-set membership
func (s *Store) IsFollowing(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.following[userID]
}

// Recents returns the recently-viewed rows, newest first
func (s *Store) Recents() []models.RecentlyViewed {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.RecentlyViewed(nil), s.recents...)
}

// Reviews returns the review collection
func (s *Store) Reviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Review(nil), s.reviews...)
}

// ShoppingItems returns the shopping-list collection in insertion order
func (s *Store) ShoppingItems() []models.ShoppingListItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ShoppingListItem(nil), s.shopping...)
}

// MealPlanEntries returns the meal-plan collection
func (s *Store) MealPlanEntries() []models.MealPlanEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MealPlanEntry(nil), s.mealPlan...)
}

// Shares returns the shared-recipe collection
func (s *Store) Shares() []models.SharedRecipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SharedRecipe(nil), s.shares...)
}
