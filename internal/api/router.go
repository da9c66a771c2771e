package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forkfeed/forkfeed/internal/sync"
	"github.com/forkfeed/forkfeed/internal/views"
	"github.com/forkfeed/forkfeed/pkg/logging"
)

// Router exposes the derived views and mutations to the UI layer. It holds
// no state of its own: reads go through the view engine, writes through the
// sync engine.
type Router struct {
	engine *sync.Engine
	views  *views.Views
	logger *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(engine *sync.Engine) *Router {
	currentUserID := ""
	if sess := engine.Session(); sess != nil {
		currentUserID = sess.UserID
	}
	return &Router{
		engine: engine,
		views:  views.New(engine.Store(), currentUserID),
		logger: logging.WithComponent("api-router"),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.GET("/health", r.healthHandler)

	api := engine.Group("/api")
	{
		api.GET("/recipes", r.getRecipes)
		api.GET("/recipes/favorites", r.getFavoriteRecipes)
		api.GET("/recipes/recent", r.getRecentRecipes)
		api.GET("/recipes/custom", r.getCustomRecipes)
		api.GET("/recipes/:id/rating", r.getAverageRating)
		api.POST("/recipes", r.addRecipe)
		api.PATCH("/recipes/:id", r.updateRecipe)
		api.DELETE("/recipes/:id", r.deleteRecipe)
		api.POST("/recipes/:id/favorite", r.toggleFavorite)
		api.POST("/recipes/:id/view", r.addRecentlyViewed)
		api.POST("/recipes/:id/reviews", r.addReview)
		api.POST("/recipes/:id/share", r.shareRecipe)

		api.GET("/shopping-list", r.getShoppingList)
		api.POST("/shopping-list", r.addToShoppingList)
		api.POST("/shopping-list/:id/toggle", r.toggleShoppingItem)
		api.DELETE("/shopping-list/checked", r.clearCheckedShoppingItems)
		api.DELETE("/shopping-list/all", r.clearShoppingList)
		api.DELETE("/shopping-list/:id", r.removeShoppingItem)

		api.GET("/meal-plan", r.getMealPlanSlot)
		api.POST("/meal-plan", r.addMealPlanEntry)
		api.DELETE("/meal-plan/:id", r.removeMealPlanEntry)

		api.GET("/users/suggested", r.getSuggestedUsers)
		api.POST("/users/:id/follow", r.toggleFollow)
	}
}

func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"service":     "forkfeed-sync",
		"follow_mode": string(r.engine.FollowMode()),
	})
}

// fail maps the engine error taxonomy onto HTTP statuses
func (r *Router) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sync.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, sync.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, sync.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, sync.ErrBackendUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
