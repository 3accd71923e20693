package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nutriplan/internal/services"

	"github.com/gin-gonic/gin"
)

// DailyPlanGenerator is implemented by services.MealPlanService.
type DailyPlanGenerator interface {
	GenerateDailyPlan(ctx context.Context, userID uint, day time.Time) (*services.DailyPlanResult, error)
}

type AIPlanController struct {
	generator DailyPlanGenerator
}

func NewAIPlanController(generator DailyPlanGenerator) *AIPlanController {
	return &AIPlanController{generator: generator}
}

// GenerateDailyPlan godoc
// @Summary Generate an AI daily meal plan
// @Description Generate a one-day meal plan from the user's recipe catalog. Limited per day by subscription tier.
// @Tags ai
// @Produce json
// @Param date query string false "Target date (YYYY-MM-DD, default today)"
// @Success 200 {object} map[string]interface{} "Daily plan generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 409 {object} map[string]interface{} "Plan already generated for this date"
// @Failure 422 {object} map[string]interface{} "Profile incomplete or not enough recipes"
// @Failure 429 {object} map[string]interface{} "Daily generation limit reached"
// @Failure 502 {object} map[string]interface{} "Recommendation service unavailable"
// @Router /ai/daily-plan [post]
func (ac *AIPlanController) GenerateDailyPlan(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date",
				"error":   "Date must be formatted as YYYY-MM-DD",
			})
			return
		}
		day = parsed
	}

	result, err := ac.generator.GenerateDailyPlan(c.Request.Context(), userID, day)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily plan generated successfully",
		"data":    result,
	})
}

// respondGenerationError maps the generation taxonomy onto HTTP statuses.
// Quota exhaustion is retryable tomorrow, external failures are retryable
// now; the remaining rejections need user or catalog changes first.
func respondGenerationError(c *gin.Context, err error) {
	var extErr *services.ExternalServiceError

	switch {
	case errors.Is(err, services.ErrQuotaExceeded):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"status":  "error",
			"message": "Daily AI generation limit reached",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrProfileIncomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Complete your profile and health data first",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrDuplicatePlan):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "A plan was already generated for this date",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInsufficientCandidates):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Not enough recipes available to generate a plan",
			"error":   err.Error(),
		})
	case errors.As(err, &extErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Recommendation service unavailable, try again later",
			"error":   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate daily plan",
			"error":   err.Error(),
		})
	}
}
