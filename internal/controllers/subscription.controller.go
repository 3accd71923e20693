package controllers

import (
	"errors"
	"net/http"

	"nutriplan/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscriptionController struct {
	subscriptions repository.UserSubscriptionRepository
}

func NewSubscriptionController(subscriptions repository.UserSubscriptionRepository) *SubscriptionController {
	return &SubscriptionController{subscriptions: subscriptions}
}

// GetSubscription godoc
// @Summary Get the authenticated user's subscription status
// @Tags subscription
// @Produce json
// @Success 200 {object} map[string]interface{} "Subscription retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve subscription"
// @Router /subscription/me [get]
func (sc *SubscriptionController) GetSubscription(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	subscription, err := sc.subscriptions.FindByUserID(userID)
	if err != nil {
		// No subscription row means a standard account, not an error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Subscription retrieved successfully",
				"data":    gin.H{"is_pro": false, "active": false},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve subscription",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Subscription retrieved successfully",
		"data": gin.H{
			"is_pro":             subscription.IsPro,
			"active":             subscription.IsActive(),
			"current_period_end": subscription.CurrentPeriodEnd,
		},
	})
}
