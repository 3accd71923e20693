package repository

import (
	"time"

	"nutriplan/internal/models"

	"gorm.io/gorm"
)

type MealLogRepository interface {
	Create(mealLog *models.MealLog) error
	FindByID(id uint) (*models.MealLog, error)
	FindAllByUserID(userID uint) ([]models.MealLog, error)
	FindByUserIDAndDate(userID uint, day time.Time) ([]models.MealLog, error)
	Delete(id uint) error
}

type mealLogRepository struct {
	db *gorm.DB
}

func NewMealLogRepository(db *gorm.DB) MealLogRepository {
	return &mealLogRepository{db}
}

func (r *mealLogRepository) Create(mealLog *models.MealLog) error {
	return r.db.Create(mealLog).Error
}

func (r *mealLogRepository) FindByID(id uint) (*models.MealLog, error) {
	var mealLog models.MealLog
	err := r.db.First(&mealLog, id).Error
	if err != nil {
		return nil, err
	}
	return &mealLog, nil
}

func (r *mealLogRepository) FindAllByUserID(userID uint) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := r.db.Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *mealLogRepository) FindByUserIDAndDate(userID uint, day time.Time) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := r.db.Where("user_id = ? AND consumed_at = ?", userID, day).
		Find(&logs).Error
	return logs, err
}

func (r *mealLogRepository) Delete(id uint) error {
	return r.db.Delete(&models.MealLog{}, id).Error
}
