package controllers

import (
	"net/http"
	"time"

	"nutriplan/internal/models"
	"nutriplan/internal/repository"

	"github.com/gin-gonic/gin"
)

type MealLogController struct {
	logs  repository.MealLogRepository
	meals repository.MealRepository
}

func NewMealLogController(logs repository.MealLogRepository, meals repository.MealRepository) *MealLogController {
	return &MealLogController{logs: logs, meals: meals}
}

type mealLogRequest struct {
	MealID     uint   `json:"meal_id" binding:"required"`
	ConsumedAt string `json:"consumed_at" binding:"required"`
}

// CreateMealLog godoc
// @Summary Log a meal
// @Description Record that a meal was consumed on a calendar date
// @Tags meal-log
// @Accept json
// @Produce json
// @Param meal_log body mealLogRequest true "Meal log data"
// @Success 201 {object} map[string]interface{} "Meal logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Failure 500 {object} map[string]interface{} "Failed to log meal"
// @Router /meal-log [post]
func (lc *MealLogController) CreateMealLog(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req mealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	day, err := time.Parse("2006-01-02", req.ConsumedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "consumed_at must be formatted as YYYY-MM-DD",
		})
		return
	}

	meal, err := lc.meals.FindByID(req.MealID)
	if err != nil || meal.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}

	mealLog := &models.MealLog{
		UserID:     userID,
		MealID:     meal.ID,
		ConsumedAt: day,
	}
	if err := lc.logs.Create(mealLog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log meal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal logged successfully",
		"data":    mealLog,
	})
}

// GetMealLogs godoc
// @Summary List meal logs
// @Description Retrieve the user's meal logs, optionally filtered by date
// @Tags meal-log
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Meal logs retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve meal logs"
// @Router /meal-log [get]
func (lc *MealLogController) GetMealLogs(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var (
		logs []models.MealLog
		err  error
	)
	if dateStr := c.Query("date"); dateStr != "" {
		day, parseErr := time.Parse("2006-01-02", dateStr)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date",
				"error":   "Date must be formatted as YYYY-MM-DD",
			})
			return
		}
		logs, err = lc.logs.FindByUserIDAndDate(userID, day)
	} else {
		logs, err = lc.logs.FindAllByUserID(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meal logs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal logs retrieved successfully",
		"data":    logs,
	})
}

// DeleteMealLog godoc
// @Summary Delete a meal log
// @Description Delete one meal log of the authenticated user
// @Tags meal-log
// @Produce json
// @Param id path int true "Meal log ID"
// @Success 200 {object} map[string]interface{} "Meal log deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal log ID"
// @Failure 404 {object} map[string]interface{} "Meal log not found"
// @Router /meal-log/{id} [delete]
func (lc *MealLogController) DeleteMealLog(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	mealLog, err := lc.logs.FindByID(id)
	if err != nil || mealLog.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal log not found",
			"error":   "No meal log exists with the provided ID",
		})
		return
	}

	if err := lc.logs.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete meal log",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal log deleted successfully",
	})
}
