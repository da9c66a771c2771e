package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkfeed/forkfeed/internal/models"
	"github.com/forkfeed/forkfeed/internal/sync"
)

func (r *Router) getRecipes(c *gin.Context) {
	if err := r.fetch(c, sync.KindRecipes, sync.KindFavorites); err != nil {
		return
	}
	c.JSON(http.StatusOK, r.views.AllRecipes())
}

func (r *Router) getFavoriteRecipes(c *gin.Context) {
	if err := r.fetch(c, sync.KindRecipes, sync.KindFavorites); err != nil {
		return
	}
	c.JSON(http.StatusOK, r.views.FavoriteRecipes())
}

func (r *Router) getRecentRecipes(c *gin.Context) {
	if err := r.fetch(c, sync.KindRecipes, sync.KindFavorites, sync.KindRecents); err != nil {
		return
	}
	c.JSON(http.StatusOK, r.views.RecentRecipes())
}

func (r *Router) getCustomRecipes(c *gin.Context) {
	if err := r.fetch(c, sync.KindRecipes, sync.KindFavorites); err != nil {
		return
	}
	c.JSON(http.StatusOK, r.views.CustomRecipes())
}

func (r *Router) getAverageRating(c *gin.Context) {
	if err := r.fetch(c, sync.KindReviews); err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"average": r.views.AverageRating(c.Param("id"))})
}

// fetch materializes the collections a view needs, replying with the fetch
// error if any fails.
func (r *Router) fetch(c *gin.Context, kinds ...sync.Kind) error {
	for _, kind := range kinds {
		if err := r.engine.Fetch(c.Request.Context(), kind); err != nil {
			r.fail(c, err)
			return err
		}
	}
	return nil
}

type recipeRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	ImageURL    string                `json:"imageUrl"`
	Category    models.Category       `json:"category"`
	Cuisine     string                `json:"cuisine"`
	Difficulty  models.Difficulty     `json:"difficulty"`
	PrepTime    int                   `json:"prepTime"`
	CookTime    int                   `json:"cookTime"`
	Servings    int                   `json:"servings"`
	Nutrition   *models.NutritionInfo `json:"nutrition"`
	Tags        []string              `json:"tags"`
	SourceURL   string                `json:"sourceUrl"`
	Ingredients []models.Ingredient   `json:"ingredients"`
	Steps       []models.Step         `json:"steps"`
}

func (r *Router) addRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe := &models.Recipe{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Cuisine:     req.Cuisine,
		Difficulty:  req.Difficulty,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Nutrition:   req.Nutrition,
		Tags:        req.Tags,
		SourceURL:   req.SourceURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	}
	if err := r.engine.AddRecipe(c.Request.Context(), recipe); err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": recipe.ID})
}

type recipePatchRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	ImageURL    *string               `json:"imageUrl"`
	Category    *models.Category      `json:"category"`
	Cuisine     *string               `json:"cuisine"`
	Difficulty  *models.Difficulty    `json:"difficulty"`
	PrepTime    *int                  `json:"prepTime"`
	CookTime    *int                  `json:"cookTime"`
	Servings    *int                  `json:"servings"`
	Nutrition   *models.NutritionInfo `json:"nutrition"`
	Tags        *[]string             `json:"tags"`
	SourceURL   *string               `json:"sourceUrl"`
	Ingredients *[]models.Ingredient  `json:"ingredients"`
	Steps       *[]models.Step        `json:"steps"`
}

func (r *Router) updateRecipe(c *gin.Context) {
	var req recipePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := models.RecipePatch{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Cuisine:     req.Cuisine,
		Difficulty:  req.Difficulty,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Nutrition:   req.Nutrition,
		Tags:        req.Tags,
		SourceURL:   req.SourceURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	}
	if err := r.engine.UpdateRecipe(c.Request.Context(), c.Param("id"), patch); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) deleteRecipe(c *gin.Context) {
	if err := r.engine.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) toggleFavorite(c *gin.Context) {
	if err := r.engine.ToggleFavorite(c.Request.Context(), c.Param("id")); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) addRecentlyViewed(c *gin.Context) {
	if err := r.engine.AddRecentlyViewed(c.Request.Context(), c.Param("id")); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *Router) addReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := r.engine.AddReview(c.Request.Context(), c.Param("id"), req.Rating, req.Comment); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

type shareRequest struct {
	ToUserIDs []string `json:"toUserIds"`
	Message   string   `json:"message"`
}

func (r *Router) shareRecipe(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := r.engine.ShareRecipe(c.Request.Context(), c.Param("id"), req.ToUserIDs, req.Message); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (r *Router) getShoppingList(c *gin.Context) {
	if err := r.fetch(c, sync.KindShoppingList); err != nil {
		return
	}
	c.JSON(http.StatusOK, r.views.GroupedShoppingList())
}

type shoppingAddRequest struct {
	Ingredients []models.Ingredient `json:"ingredients"`
	RecipeID    string              `json:"recipeId"`
	RecipeName  string              `json:"recipeName"`
}

func (r *Router) addToShoppingList(c *gin.Context) {
	var req shoppingAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := r.engine.AddToShoppingList(c.Request.Context(), req.Ingredients, req.RecipeID, req.RecipeName); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (r *Router) toggleShoppingItem(c *gin.Context) {
	if err := r.engine.ToggleShoppingItem(c.Request.Context(), c.Param("id")); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) removeShoppingItem(c *gin.Context) {
	if err := r.engine.RemoveShoppingItem(c.Request.Context(), c.Param("id")); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) clearCheckedShoppingItems(c *gin.Context) {
	if err := r.engine.ClearCheckedShoppingItems(c.Request.Context()); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) clearShoppingList(c *gin.Context) {
	if err := r.engine.ClearShoppingList(c.Request.Context()); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) getMealPlanSlot(c *gin.Context) {
	if err := r.fetch(c, sync.KindRecipes, sync.KindMealPlan); err != nil {
		return
	}
	date := c.Query("date")
	meal := models.MealType(c.Query("meal"))
	c.JSON(http.StatusOK, r.views.MealPlanEntriesForSlot(date, meal))
}

type mealPlanRequest struct {
	Date     string          `json:"date"`
	MealType models.MealType `json:"mealType"`
	RecipeID string          `json:"recipeId"`
}

func (r *Router) addMealPlanEntry(c *gin.Context) {
	var req mealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := r.engine.AddMealPlanEntry(c.Request.Context(), req.Date, req.MealType, req.RecipeID); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (r *Router) removeMealPlanEntry(c *gin.Context) {
	if err := r.engine.RemoveMealPlanEntry(c.Request.Context(), c.Param("id")); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) getSuggestedUsers(c *gin.Context) {
	if err := r.fetch(c, sync.KindUsers, sync.KindFollows); err != nil {
		return
	}
	c.JSON(http.StatusOK, r.views.SuggestedUsers())
}

func (r *Router) toggleFollow(c *gin.Context) {
	if err := r.engine.ToggleFollow(c.Request.Context(), c.Param("id")); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
