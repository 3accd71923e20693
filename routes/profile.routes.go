package routes

import (
	"nutriplan/internal/controllers"
	"nutriplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.UserProfileController, subscriptionController *controllers.SubscriptionController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("/me", profileController.GetProfile)
		profileRoutes.PUT("/me", profileController.UpdateProfile)
		profileRoutes.GET("/me/health", profileController.GetHealthData)
		profileRoutes.PUT("/me/health", profileController.UpdateHealthData)
	}

	subscriptionRoutes := router.Group("/subscription")
	subscriptionRoutes.Use(middleware.AuthMiddleware())
	{
		subscriptionRoutes.GET("/me", subscriptionController.GetSubscription)
	}
}
