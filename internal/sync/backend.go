package sync

import (
	"context"
	"time"

	"github.com/forkfeed/forkfeed/internal/models"
)

// Backend is the remote collection surface the engine reads and writes.
// Fetches are idempotent and side-effect-free; writes are plain inserts,
// updates and deletes with no server-side guarantee assumed beyond what the
// implementation documents. internal/backend provides the gorm
// implementation; tests use an in-memory fake.
type Backend interface {
	// Recipes
	Recipes(ctx context.Context) ([]models.Recipe, error)
	RecipeAuthor(ctx context.Context, recipeID string) (string, error)
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error
	UpdateRecipe(ctx context.Context, recipeID string, patch models.RecipePatch) error
	DeleteRecipe(ctx context.Context, recipeID string) error

	// Users
	Users(ctx context.Context) ([]models.User, error)

	// Favorites
	FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error)
	InsertFavorite(ctx context.Context, userID, recipeID string) error
	DeleteFavorite(ctx context.Context, userID, recipeID string) error

	// Recently viewed
	RecentlyViewed(ctx context.Context, userID string) ([]models.RecentlyViewed, error)
	UpsertRecentlyViewed(ctx context.Context, userID, recipeID string, viewedAt time.Time) error

	// Reviews
	Reviews(ctx context.Context) ([]models.Review, error)
	InsertReview(ctx context.Context, review *models.Review) error

	// Shopping list
	ShoppingList(ctx context.Context, userID string) ([]models.ShoppingListItem, error)
	InsertShoppingItems(ctx context.Context, items []models.ShoppingListItem) error
	SetShoppingItemChecked(ctx context.Context, userID, itemID string, checked bool) error
	DeleteShoppingItem(ctx context.Context, userID, itemID string) error
	DeleteCheckedShoppingItems(ctx context.Context, userID string) error
	ClearShoppingList(ctx context.Context, userID string) error

	// Meal plan
	MealPlanEntries(ctx context.Context, userID string) ([]models.MealPlanEntry, error)
	InsertMealPlanEntry(ctx context.Context, entry *models.MealPlanEntry) error
	DeleteMealPlanEntry(ctx context.Context, userID, entryID string) error

	// Shares
	SharedRecipes(ctx context.Context, userID string) ([]models.SharedRecipe, error)
	InsertSharedRecipes(ctx context.Context, shares []models.SharedRecipe) error

	// Follow graph (remote mode only; internal/follow selects the source)
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	InsertFollow(ctx context.Context, followerID, followingID string) error
	DeleteFollow(ctx context.Context, followerID, followingID string) error
}
