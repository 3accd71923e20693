package main

import (
	"log"
	"net/http"
	"time"

	"nutriplan/database"
	"nutriplan/docs"
	"nutriplan/internal/config"
	"nutriplan/internal/controllers"
	"nutriplan/internal/notifications"
	"nutriplan/internal/openai"
	"nutriplan/internal/quota"
	"nutriplan/internal/repository"
	"nutriplan/internal/services"
	"nutriplan/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title NutriPlan API
// @version 1.0
// @description Nutrition tracking and AI meal planning backend.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	docs.SwaggerInfo.Title = "NutriPlan API"
	docs.SwaggerInfo.Description = "Nutrition tracking and AI meal planning backend."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Repositories
	foodRepo := repository.NewFoodItemRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	mealRepo := repository.NewMealRepository(database.DB)
	mealLogRepo := repository.NewMealLogRepository(database.DB)
	mealPlanRepo := repository.NewMealPlanRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	healthRepo := repository.NewUserHealthDataRepository(database.DB)
	subscriptionRepo := repository.NewUserSubscriptionRepository(database.DB)

	// Redis-backed daily generation quota
	counterStore, err := quota.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	tracker := quota.NewTracker(counterStore)

	// OpenAI recommender
	aiClient, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("Failed to create OpenAI client: %v", err)
	}

	// Plan notifications via RabbitMQ; the app still works without a broker.
	publisher, err := notifications.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, plan events disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	planService := services.NewMealPlanService(
		recipeRepo,
		mealRepo,
		mealPlanRepo,
		profileRepo,
		healthRepo,
		subscriptionRepo,
		tracker,
		aiClient,
		publisher,
	)

	// Controllers
	foodController := controllers.NewFoodItemController(foodRepo)
	recipeController := controllers.NewRecipeController(recipeRepo)
	mealController := controllers.NewMealController(mealRepo, recipeRepo)
	mealLogController := controllers.NewMealLogController(mealLogRepo, mealRepo)
	profileController := controllers.NewUserProfileController(profileRepo, healthRepo)
	subscriptionController := controllers.NewSubscriptionController(subscriptionRepo)
	aiPlanController := controllers.NewAIPlanController(planService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "NutriPlan API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterSwaggerRoutes(router)
	routes.RegisterFoodRoutes(router, foodController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterMealRoutes(router, mealController, mealLogController)
	routes.RegisterProfileRoutes(router, profileController, subscriptionController)
	routes.RegisterAIRoutes(router, aiPlanController)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
