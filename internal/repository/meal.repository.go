package repository

import (
	"time"

	"nutriplan/internal/models"

	"gorm.io/gorm"
)

type MealRepository interface {
	Create(meal *models.Meal) error
	FindByID(id uint) (*models.Meal, error)
	FindAllByUserID(userID uint) ([]models.Meal, error)
	Delete(id uint) error
	// PersistPlanSlot is the idempotent write path of the plan generator:
	// get-or-create the Meal keyed by (user, name, meal type), overwrite its
	// recipe set to exactly the one recipe, then get-or-create the MealLog
	// for the target date. Runs in a single transaction so an abort leaves
	// no partial Meal/MealLog behind.
	PersistPlanSlot(userID uint, mealType string, recipe *models.Recipe, day time.Time) (*models.Meal, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db}
}

func withMealPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients.FoodItem.Nutrition").
		Preload("Ingredients.FoodItem.ServingSizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("serving_sizes.id ASC")
		}).
		Preload("Recipes.Ingredients.FoodItem.Nutrition").
		Preload("Recipes.Ingredients.FoodItem.ServingSizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("serving_sizes.id ASC")
		})
}

func (r *mealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepository) FindByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := withMealPreloads(r.db).First(&meal, id).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindAllByUserID(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := withMealPreloads(r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) Delete(id uint) error {
	return r.db.Select("Ingredients").Delete(&models.Meal{ID: id}).Error
}

func (r *mealRepository) PersistPlanSlot(userID uint, mealType string, recipe *models.Recipe, day time.Time) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.Meal{
			UserID:   userID,
			Name:     recipe.Name,
			MealType: mealType,
		}).FirstOrCreate(&meal).Error; err != nil {
			return err
		}

		// Replace, not append: the meal holds exactly the selected recipe.
		if err := tx.Model(&meal).Association("Recipes").Replace(recipe); err != nil {
			return err
		}

		var mealLog models.MealLog
		if err := tx.Where(models.MealLog{
			UserID:     userID,
			MealID:     meal.ID,
			ConsumedAt: day,
		}).FirstOrCreate(&mealLog).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(meal.ID)
}
