package handlers

import (
	"net/http"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/service"
)

// RecipeHandler is the handler for recipe discovery requests.
type RecipeHandler struct {
	Service *service.RecipeService
}

// NewRecipeHandler is the constructor function for initializing a new RecipeHandler.
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{Service: recipeService}
}

// SearchRecipes finds meals for ?q= by ?type=ingredient|name.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	searchType := c.DefaultQuery("type", service.SearchByIngredient)
	if !govalidator.IsIn(searchType, service.SearchByIngredient, service.SearchByName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be ingredient or name"})
		return
	}

	recipes, err := h.Service.Search(c.Request.Context(), c.Query("q"), searchType)
	if err != nil {
		respondError(c, "search recipes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRandomRecipe returns a random meal.
func (h *RecipeHandler) GetRandomRecipe(c *gin.Context) {
	recipe, err := h.Service.Random(c.Request.Context())
	if err != nil {
		respondError(c, "get random recipe", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// GetRecipe returns a meal by its numeric ID.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID := c.Param("recipe_id")
	if !govalidator.IsNumeric(recipeID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.Service.Detail(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, "get recipe", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// ListByCategory lists meals in :category.
func (h *RecipeHandler) ListByCategory(c *gin.Context) {
	recipes, err := h.Service.ByCategory(c.Request.Context(), strings.TrimSpace(c.Param("category")))
	if err != nil {
		respondError(c, "list recipes by category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// ListByArea lists meals from :area.
func (h *RecipeHandler) ListByArea(c *gin.Context) {
	recipes, err := h.Service.ByArea(c.Request.Context(), strings.TrimSpace(c.Param("area")))
	if err != nil {
		respondError(c, "list recipes by area", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
