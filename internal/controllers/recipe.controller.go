package controllers

import (
	"net/http"

	"nutriplan/internal/models"
	"nutriplan/internal/nutrition"
	"nutriplan/internal/repository"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	repo repository.RecipeRepository
}

func NewRecipeController(repo repository.RecipeRepository) *RecipeController {
	return &RecipeController{repo: repo}
}

type recipeIngredientRequest struct {
	FoodItemID uint    `json:"food_item_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
	Unit       string  `json:"unit"`
}

type recipeInstructionRequest struct {
	StepNumber int    `json:"step_number" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

type recipeRequest struct {
	Name         string                     `json:"name" binding:"required"`
	Description  string                     `json:"description"`
	IsPublic     bool                       `json:"is_public"`
	Ingredients  []recipeIngredientRequest  `json:"ingredients" binding:"required,min=1"`
	Instructions []recipeInstructionRequest `json:"instructions"`
}

// validInstructions checks that step numbers are 1-based, unique and
// contiguous.
func validInstructions(steps []recipeInstructionRequest) bool {
	seen := make(map[int]bool, len(steps))
	for _, step := range steps {
		if step.StepNumber < 1 || step.StepNumber > len(steps) || seen[step.StepNumber] {
			return false
		}
		seen[step.StepNumber] = true
	}
	return true
}

func (req *recipeRequest) toModel(userID uint) *models.Recipe {
	recipe := &models.Recipe{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
			FoodItemID: ing.FoodItemID,
			Quantity:   ing.Quantity,
			Unit:       ing.Unit,
		})
	}
	for _, step := range req.Instructions {
		recipe.Instructions = append(recipe.Instructions, models.Instruction{
			StepNumber: step.StepNumber,
			Text:       step.Text,
		})
	}
	return recipe
}

// CreateRecipe godoc
// @Summary Create a recipe
// @Description Create a recipe owned by the authenticated user
// @Tags recipe
// @Accept json
// @Produce json
// @Param recipe body recipeRequest true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create recipe"
// @Router /recipe [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if !validInstructions(req.Instructions) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid instructions",
			"error":   "Instruction step numbers must be unique and sequential starting at 1",
		})
		return
	}

	recipe := req.toModel(userID)
	if err := rc.repo.Create(recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create recipe",
			"error":   err.Error(),
		})
		return
	}

	created, err := rc.repo.FindByID(recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load created recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    nutrition.BuildRecipe(created, nutrition.NewMemo()),
	})
}

// GetRecipes godoc
// @Summary List recipes visible to the user
// @Description Retrieve recipes owned by the authenticated user or flagged public, with computed nutrition totals
// @Tags recipe
// @Produce json
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve recipes"
// @Router /recipe [get]
func (rc *RecipeController) GetRecipes(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	recipes, err := rc.repo.FindVisibleToUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recipes",
			"error":   err.Error(),
		})
		return
	}

	memo := nutrition.NewMemo()
	representations := make([]nutrition.RecipeRepresentation, 0, len(recipes))
	for i := range recipes {
		representations = append(representations, nutrition.BuildRecipe(&recipes[i], memo))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    representations,
	})
}

// GetRecipeByID godoc
// @Summary Get a recipe by ID
// @Description Retrieve one recipe; private recipes are only visible to their owner
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid recipe ID"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipe/{id} [get]
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	// The owned-or-public filter doubles as the visibility check; a private
	// recipe of another user reads as not found.
	recipe, err := rc.repo.FindCandidate(id, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No visible recipe exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    nutrition.BuildRecipe(recipe, nutrition.NewMemo()),
	})
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Update a recipe owned by the authenticated user
// @Tags recipe
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body recipeRequest true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Not the recipe owner"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipe/{id} [put]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	existing, err := rc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the recipe owner",
			"error":   "Only the owner can update a recipe",
		})
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if !validInstructions(req.Instructions) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid instructions",
			"error":   "Instruction step numbers must be unique and sequential starting at 1",
		})
		return
	}

	recipe := req.toModel(userID)
	recipe.ID = existing.ID
	recipe.CreatedAt = existing.CreatedAt

	if err := rc.repo.Update(recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update recipe",
			"error":   err.Error(),
		})
		return
	}

	updated, err := rc.repo.FindByID(recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load updated recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    nutrition.BuildRecipe(updated, nutrition.NewMemo()),
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Delete a recipe owned by the authenticated user
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid recipe ID"
// @Failure 403 {object} map[string]interface{} "Not the recipe owner"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipe/{id} [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	existing, err := rc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the recipe owner",
			"error":   "Only the owner can delete a recipe",
		})
		return
	}

	if err := rc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
	})
}
