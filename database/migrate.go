package database

import (
	"log"

	"nutriplan/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserHealthData{},
		&models.UserSubscription{},
		&models.FoodItem{},
		&models.NutritionProfile{},
		&models.ServingSize{},
		&models.Recipe{},
		&models.Instruction{},
		&models.RecipeIngredient{},
		&models.Meal{},
		&models.MealIngredient{},
		&models.MealLog{},
		&models.MealPlan{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
