package views

import (
	"sort"

	"github.com/forkfeed/forkfeed/internal/models"
	"github.com/forkfeed/forkfeed/internal/store"
)

// OtherItemsGroup is the bucket for shopping items with no recipe provenance
const OtherItemsGroup = "Other Items"

// SuggestedUsersLimit caps the suggested-users view
const SuggestedUsersLimit = 5

// RecipeView is a recipe annotated with the current user's favorite flag
type RecipeView struct {
	models.Recipe
	IsFavorite bool `json:"isFavorite"`
}

// ShoppingGroup is one provenance bucket of the grouped shopping list
type ShoppingGroup struct {
	Name  string                    `json:"name"`
	Items []models.ShoppingListItem `json:"items"`
}

// SlotEntry is a meal-plan entry resolved to its recipe
type SlotEntry struct {
	Entry  models.MealPlanEntry `json:"entry"`
	Recipe models.Recipe        `json:"recipe"`
}

// Views computes the derived projections the UI reads. Every method is a
// pure recomputation over the entity store; nothing here holds state that
// can go stale independently of its inputs.
type Views struct {
	store         *store.Store
	currentUserID string
}

// New creates the view engine for one session
func New(st *store.Store, currentUserID string) *Views {
	return &Views{store: st, currentUserID: currentUserID}
}

// AllRecipes returns every recipe with its favorite flag
func (v *Views) AllRecipes() []RecipeView {
	favorites := v.store.FavoriteSet()
	recipes := v.store.Recipes()
	out := make([]RecipeView, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, RecipeView{Recipe: r, IsFavorite: favorites[r.ID]})
	}
	return out
}

// FavoriteRecipes returns only the favorited recipes
func (v *Views) FavoriteRecipes() []RecipeView {
	all := v.AllRecipes()
	out := make([]RecipeView, 0, len(all))
	for _, r := range all {
		if r.IsFavorite {
			out = append(out, r)
		}
	}
	return out
}

// RecentRecipes maps the recently-viewed rows (already newest-first, capped
// and deduplicated) through recipe lookup, dropping views of recipes that no
// longer exist and preserving recency order.
func (v *Views) RecentRecipes() []RecipeView {
	favorites := v.store.FavoriteSet()
	recents := v.store.Recents()
	out := make([]RecipeView, 0, len(recents))
	for _, row := range recents {
		recipe, ok := v.store.RecipeByID(row.RecipeID)
		if !ok {
			continue
		}
		out = append(out, RecipeView{Recipe: recipe, IsFavorite: favorites[recipe.ID]})
	}
	return out
}

// CustomRecipes returns the recipes authored by the current user
func (v *Views) CustomRecipes() []RecipeView {
	all := v.AllRecipes()
	out := make([]RecipeView, 0, len(all))
	for _, r := range all {
		if r.AuthorID == v.currentUserID && v.currentUserID != "" {
			out = append(out, r)
		}
	}
	return out
}

// GroupedShoppingList groups items by recipe name with an "Other Items"
// bucket for items without provenance. Group order is insertion order of the
// first-seen key.
func (v *Views) GroupedShoppingList() []ShoppingGroup {
	items := v.store.ShoppingItems()
	index := map[string]int{}
	groups := make([]ShoppingGroup, 0)
	for _, item := range items {
		name := item.RecipeName
		if name == "" {
			name = OtherItemsGroup
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, ShoppingGroup{Name: name})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// MealPlanEntriesForSlot returns the entries matching both the date and the
// meal type, resolved to existing recipes, in insertion order. Entries whose
// recipe no longer exists are silently dropped.
func (v *Views) MealPlanEntriesForSlot(date string, mealType models.MealType) []SlotEntry {
	out := make([]SlotEntry, 0)
	for _, entry := range v.store.MealPlanEntries() {
		if entry.Date != date || entry.MealType != mealType {
			continue
		}
		recipe, ok := v.store.RecipeByID(entry.RecipeID)
		if !ok {
			continue
		}
		out = append(out, SlotEntry{Entry: entry, Recipe: recipe})
	}
	return out
}

// AverageRating returns the arithmetic mean of a recipe's review ratings,
// or nil when it has no reviews (callers fall back to the recipe's seeded
// rating).
func (v *Views) AverageRating(recipeID string) *float64 {
	var sum, count int
	for _, review := range v.store.Reviews() {
		if review.RecipeID == recipeID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := float64(sum) / float64(count)
	return &avg
}

// SuggestedUsers returns the non-followed users sorted by follower count
// descending, truncated to 5. The current user is never suggested.
func (v *Views) SuggestedUsers() []models.User {
	following := v.store.FollowingSet()
	users := v.store.Users()
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID == v.currentUserID || following[u.ID] {
			continue
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FollowersCount > out[j].FollowersCount
	})
	if len(out) > SuggestedUsersLimit {
		out = out[:SuggestedUsersLimit]
	}
	return out
}
