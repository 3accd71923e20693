package routes

import (
	"nutriplan/internal/controllers"
	"nutriplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodItemController) {
	foodRoutes := router.Group("/food")
	foodRoutes.Use(middleware.AuthMiddleware())
	{
		foodRoutes.POST("/", foodController.CreateFoodItem)
		foodRoutes.GET("/", foodController.GetFoodItems)
		foodRoutes.GET("/:id", foodController.GetFoodItemByID)
		foodRoutes.PUT("/:id", foodController.UpdateFoodItem)
		foodRoutes.DELETE("/:id", foodController.DeleteFoodItem)
	}
}
