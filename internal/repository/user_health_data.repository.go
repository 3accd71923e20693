package repository

import (
	"nutriplan/internal/models"

	"gorm.io/gorm"
)

type UserHealthDataRepository interface {
	FindByUserID(userID uint) (*models.UserHealthData, error)
	Save(health *models.UserHealthData) error
}

type userHealthDataRepository struct {
	db *gorm.DB
}

func NewUserHealthDataRepository(db *gorm.DB) UserHealthDataRepository {
	return &userHealthDataRepository{db}
}

func (r *userHealthDataRepository) FindByUserID(userID uint) (*models.UserHealthData, error) {
	var health models.UserHealthData
	err := r.db.Where("user_id = ?", userID).First(&health).Error
	if err != nil {
		return nil, err
	}
	return &health, nil
}

func (r *userHealthDataRepository) Save(health *models.UserHealthData) error {
	return r.db.Save(health).Error
}
