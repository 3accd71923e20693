package routes

import (
	"nutriplan/internal/controllers"
	"nutriplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/recipe")
	recipeRoutes.Use(middleware.AuthMiddleware())
	{
		recipeRoutes.POST("/", recipeController.CreateRecipe)
		recipeRoutes.GET("/", recipeController.GetRecipes)
		recipeRoutes.GET("/:id", recipeController.GetRecipeByID)
		recipeRoutes.PUT("/:id", recipeController.UpdateRecipe)
		recipeRoutes.DELETE("/:id", recipeController.DeleteRecipe)
	}
}
