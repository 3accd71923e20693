package main

import (
	"log"

	"nutriplan/database"
	"nutriplan/internal/config"
	"nutriplan/internal/models"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func ptr[T any](v T) *T { return &v }

// catalog is a starter set of per-100g food items so a fresh install has
// enough data to build recipes against.
func catalog() []models.FoodItem {
	return []models.FoodItem{
		{
			Name:          "Chicken Breast",
			Price:         ptr(9.50),
			PriceQuantity: ptr(1000.0),
			PriceUnit:     "g",
			Nutrition: &models.NutritionProfile{
				Calories: 165, Protein: 31, ProteinType: models.ProteinTypeMeat, Carbohydrates: 0, Fats: 3.6,
			},
			ServingSizes: []models.ServingSize{
				{Description: "fillet", Quantity: 120, Unit: "g"},
			},
		},
		{
			Name:          "Brown Rice",
			Price:         ptr(3.20),
			PriceQuantity: ptr(1000.0),
			PriceUnit:     "g",
			Nutrition: &models.NutritionProfile{
				Calories: 112, Protein: 2.6, Carbohydrates: 23.5, Fats: 0.9,
				Fiber: ptr(1.8),
			},
			ServingSizes: []models.ServingSize{
				{Description: "cup cooked", Quantity: 195, Unit: "g"},
			},
		},
		{
			Name:          "Broccoli",
			Price:         ptr(2.80),
			PriceQuantity: ptr(500.0),
			PriceUnit:     "g",
			Nutrition: &models.NutritionProfile{
				Calories: 34, Protein: 2.8, Carbohydrates: 6.6, Fats: 0.4,
				Fiber: ptr(2.6),
			},
			ServingSizes: []models.ServingSize{
				{Description: "cup chopped", Quantity: 91, Unit: "g"},
			},
		},
		{
			Name:          "Whole Egg",
			Price:         ptr(4.50),
			PriceQuantity: ptr(600.0),
			PriceUnit:     "g",
			Nutrition: &models.NutritionProfile{
				Calories: 143, Protein: 12.6, ProteinType: models.ProteinTypeMeat, Carbohydrates: 0.7, Fats: 9.5,
			},
			ServingSizes: []models.ServingSize{
				{Description: "large egg", Quantity: 50, Unit: "g"},
			},
		},
		{
			Name:          "Rolled Oats",
			Price:         ptr(2.10),
			PriceQuantity: ptr(1000.0),
			PriceUnit:     "g",
			Nutrition: &models.NutritionProfile{
				Calories: 389, Protein: 16.9, ProteinType: models.ProteinTypeVegan, Carbohydrates: 66.3, Fats: 6.9,
				Fiber: ptr(10.6),
			},
			ServingSizes: []models.ServingSize{
				{Description: "half cup", Quantity: 40, Unit: "g"},
			},
		},
		{
			Name:          "Greek Yogurt",
			Price:         ptr(5.00),
			PriceQuantity: ptr(1000.0),
			PriceUnit:     "g",
			Nutrition: &models.NutritionProfile{
				Calories: 59, Protein: 10, ProteinType: models.ProteinTypeDairy, Carbohydrates: 3.6, Fats: 0.4,
			},
			ServingSizes: []models.ServingSize{
				{Description: "small pot", Quantity: 170, Unit: "g"},
			},
		},
		{
			Name:          "Olive Oil",
			Price:         ptr(8.00),
			PriceQuantity: ptr(750.0),
			PriceUnit:     "ml",
			Nutrition: &models.NutritionProfile{
				Calories: 884, Protein: 0, Carbohydrates: 0, Fats: 100,
			},
			ServingSizes: []models.ServingSize{
				{Description: "tablespoon", Quantity: 13.5, Unit: "g"},
			},
		},
		{
			Name:          "Banana",
			Price:         ptr(1.60),
			PriceQuantity: ptr(1000.0),
			PriceUnit:     "g",
			Nutrition: &models.NutritionProfile{
				Calories: 89, Protein: 1.1, Carbohydrates: 22.8, Fats: 0.3,
				Sugar: ptr(12.2), Fiber: ptr(2.6),
			},
			ServingSizes: []models.ServingSize{
				{Description: "medium banana", Quantity: 118, Unit: "g"},
			},
		},
	}
}

func main() {
	cfg := config.Load()
	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	seeded := 0
	for _, item := range catalog() {
		var count int64
		database.DB.Model(&models.FoodItem{}).Where("name = ?", item.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&item).Error; err != nil {
			log.Fatalf("Failed to seed food item %q: %v", item.Name, err)
		}
		seeded++
	}

	log.Printf("Seeding complete: %d new food items", seeded)
}
