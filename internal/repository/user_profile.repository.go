package repository

import (
	"nutriplan/internal/models"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	FindByUserID(userID uint) (*models.UserProfile, error)
	Save(profile *models.UserProfile) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db}
}

func (r *userProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Save(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}
