package repository

import (
	"time"

	"nutriplan/internal/models"

	"gorm.io/gorm"
)

type MealPlanRepository interface {
	Create(plan *models.MealPlan) error
	ExistsForUserAndDate(userID uint, day time.Time) (bool, error)
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db}
}

func (r *mealPlanRepository) Create(plan *models.MealPlan) error {
	return r.db.Create(plan).Error
}

func (r *mealPlanRepository) ExistsForUserAndDate(userID uint, day time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.MealPlan{}).
		Where("user_id = ? AND plan_date = ?", userID, day).
		Count(&count).Error
	return count > 0, err
}
