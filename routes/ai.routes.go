package routes

import (
	"nutriplan/internal/controllers"
	"nutriplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAIRoutes(router *gin.Engine, aiPlanController *controllers.AIPlanController) {
	aiRoutes := router.Group("/ai")
	aiRoutes.Use(middleware.AuthMiddleware())
	{
		aiRoutes.POST("/daily-plan", aiPlanController.GenerateDailyPlan)
	}
}
