package controllers

import (
	"net/http"

	"nutriplan/internal/models"
	"nutriplan/internal/nutrition"
	"nutriplan/internal/repository"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals   repository.MealRepository
	recipes repository.RecipeRepository
}

func NewMealController(meals repository.MealRepository, recipes repository.RecipeRepository) *MealController {
	return &MealController{meals: meals, recipes: recipes}
}

type mealIngredientRequest struct {
	FoodItemID uint    `json:"food_item_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
	Unit       string  `json:"unit"`
}

type mealRequest struct {
	Name        string                  `json:"name"`
	MealType    string                  `json:"meal_type" binding:"required"`
	Ingredients []mealIngredientRequest `json:"ingredients"`
	RecipeIDs   []uint                  `json:"recipe_ids"`
}

// CreateMeal godoc
// @Summary Create a meal
// @Description Create a meal from direct ingredients and/or visible recipes
// @Tags meal
// @Accept json
// @Produce json
// @Param meal body mealRequest true "Meal data"
// @Success 201 {object} map[string]interface{} "Meal created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Referenced recipe not visible"
// @Failure 500 {object} map[string]interface{} "Failed to create meal"
// @Router /meal [post]
func (mc *MealController) CreateMeal(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if !models.IsValidMealType(req.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal type",
			"error":   "Meal type must be one of breakfast, lunch, dinner, snack",
		})
		return
	}

	meal := &models.Meal{
		UserID:   userID,
		Name:     req.Name,
		MealType: req.MealType,
	}
	for _, ing := range req.Ingredients {
		meal.Ingredients = append(meal.Ingredients, models.MealIngredient{
			FoodItemID: ing.FoodItemID,
			Quantity:   ing.Quantity,
			Unit:       ing.Unit,
		})
	}

	// Only recipes the user can see may be attached; a private recipe of
	// another user reads as not found.
	for _, recipeID := range req.RecipeIDs {
		recipe, err := mc.recipes.FindCandidate(recipeID, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Recipe not found",
				"error":   "No visible recipe exists with the provided ID",
			})
			return
		}
		meal.Recipes = append(meal.Recipes, recipe)
	}

	if err := mc.meals.Create(meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create meal",
			"error":   err.Error(),
		})
		return
	}

	created, err := mc.meals.FindByID(meal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load created meal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal created successfully",
		"data":    nutrition.BuildMeal(created, nutrition.NewMemo()),
	})
}

// GetMeals godoc
// @Summary List meals
// @Description Retrieve all meals of the authenticated user with computed nutrition totals
// @Tags meal
// @Produce json
// @Success 200 {object} map[string]interface{} "Meals retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve meals"
// @Router /meal [get]
func (mc *MealController) GetMeals(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	meals, err := mc.meals.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meals",
			"error":   err.Error(),
		})
		return
	}

	// One memo for the whole listing so shared recipes are computed once.
	memo := nutrition.NewMemo()
	representations := make([]nutrition.MealRepresentation, 0, len(meals))
	for i := range meals {
		representations = append(representations, nutrition.BuildMeal(&meals[i], memo))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meals retrieved successfully",
		"data":    representations,
	})
}

// GetMealByID godoc
// @Summary Get a meal by ID
// @Description Retrieve one meal of the authenticated user
// @Tags meal
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} map[string]interface{} "Meal retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal ID"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /meal/{id} [get]
func (mc *MealController) GetMealByID(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	meal, err := mc.meals.FindByID(id)
	if err != nil || meal.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal retrieved successfully",
		"data":    nutrition.BuildMeal(meal, nutrition.NewMemo()),
	})
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Description Delete a meal of the authenticated user
// @Tags meal
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} map[string]interface{} "Meal deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal ID"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /meal/{id} [delete]
func (mc *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	meal, err := mc.meals.FindByID(id)
	if err != nil || meal.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}

	if err := mc.meals.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete meal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal deleted successfully",
	})
}
