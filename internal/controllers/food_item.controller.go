package controllers

import (
	"net/http"

	"nutriplan/internal/models"
	"nutriplan/internal/nutrition"
	"nutriplan/internal/repository"

	"github.com/gin-gonic/gin"
)

type FoodItemController struct {
	repo repository.FoodItemRepository
}

func NewFoodItemController(repo repository.FoodItemRepository) *FoodItemController {
	return &FoodItemController{repo: repo}
}

// CreateFoodItem godoc
// @Summary Create a food item
// @Description Create a food item with optional nutrition profile and serving sizes
// @Tags food
// @Accept json
// @Produce json
// @Param food body models.FoodItem true "Food item data"
// @Success 201 {object} map[string]interface{} "Food item created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create food item"
// @Router /food [post]
func (fc *FoodItemController) CreateFoodItem(c *gin.Context) {
	var item models.FoodItem

	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Food item name is required",
			"error":   "Name must not be empty",
		})
		return
	}
	if item.PriceQuantity != nil && *item.PriceQuantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid price basis",
			"error":   "Price quantity must be greater than zero when set",
		})
		return
	}
	if item.Nutrition != nil && hasNegativeNutrition(item.Nutrition) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid nutrition profile",
			"error":   "Nutrition values must be non-negative",
		})
		return
	}

	if err := fc.repo.Create(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food item created successfully",
		"data":    nutrition.BuildFoodItem(&item),
	})
}

// GetFoodItems godoc
// @Summary List food items
// @Description Retrieve the food catalog with nutrition profiles and serving sizes
// @Tags food
// @Produce json
// @Success 200 {object} map[string]interface{} "Food items retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve food items"
// @Router /food [get]
func (fc *FoodItemController) GetFoodItems(c *gin.Context) {
	items, err := fc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food items",
			"error":   err.Error(),
		})
		return
	}

	representations := make([]nutrition.FoodItemRepresentation, 0, len(items))
	for i := range items {
		representations = append(representations, nutrition.BuildFoodItem(&items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food items retrieved successfully",
		"data":    representations,
	})
}

// GetFoodItemByID godoc
// @Summary Get a food item by ID
// @Description Retrieve one food item including its cost-efficiency metric
// @Tags food
// @Produce json
// @Param id path int true "Food item ID"
// @Success 200 {object} map[string]interface{} "Food item retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food item ID"
// @Failure 404 {object} map[string]interface{} "Food item not found"
// @Router /food/{id} [get]
func (fc *FoodItemController) GetFoodItemByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := fc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food item not found",
			"error":   "No food item exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food item retrieved successfully",
		"data":    nutrition.BuildFoodItem(item),
	})
}

// UpdateFoodItem godoc
// @Summary Update a food item
// @Description Update food item information
// @Tags food
// @Accept json
// @Produce json
// @Param id path int true "Food item ID"
// @Param food body models.FoodItem true "Food item data"
// @Success 200 {object} map[string]interface{} "Food item updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food item not found"
// @Failure 500 {object} map[string]interface{} "Failed to update food item"
// @Router /food/{id} [put]
func (fc *FoodItemController) UpdateFoodItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	existing, err := fc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food item not found",
			"error":   "No food item exists with the provided ID",
		})
		return
	}

	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt

	if err := fc.repo.Update(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update food item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food item updated successfully",
		"data":    nutrition.BuildFoodItem(&item),
	})
}

// DeleteFoodItem godoc
// @Summary Delete a food item
// @Description Delete a food item and its nutrition profile and serving sizes
// @Tags food
// @Produce json
// @Param id path int true "Food item ID"
// @Success 200 {object} map[string]interface{} "Food item deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food item ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete food item"
// @Router /food/{id} [delete]
func (fc *FoodItemController) DeleteFoodItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := fc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food item deleted successfully",
	})
}

func hasNegativeNutrition(n *models.NutritionProfile) bool {
	if n.Calories < 0 || n.Protein < 0 || n.Carbohydrates < 0 || n.Fats < 0 {
		return true
	}
	for _, v := range []*float64{n.Fiber, n.Sugar, n.Sodium, n.Iron, n.Calcium, n.Potassium} {
		if v != nil && *v < 0 {
			return true
		}
	}
	return false
}
