package routes

import (
	"nutriplan/internal/controllers"
	"nutriplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealRoutes(router *gin.Engine, mealController *controllers.MealController, mealLogController *controllers.MealLogController) {
	mealRoutes := router.Group("/meal")
	mealRoutes.Use(middleware.AuthMiddleware())
	{
		mealRoutes.POST("/", mealController.CreateMeal)
		mealRoutes.GET("/", mealController.GetMeals)
		mealRoutes.GET("/:id", mealController.GetMealByID)
		mealRoutes.DELETE("/:id", mealController.DeleteMeal)
	}

	mealLogRoutes := router.Group("/meal-log")
	mealLogRoutes.Use(middleware.AuthMiddleware())
	{
		mealLogRoutes.POST("/", mealLogController.CreateMealLog)
		mealLogRoutes.GET("/", mealLogController.GetMealLogs)
		mealLogRoutes.DELETE("/:id", mealLogController.DeleteMealLog)
	}
}
