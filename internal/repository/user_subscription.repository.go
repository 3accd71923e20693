package repository

import (
	"nutriplan/internal/models"

	"gorm.io/gorm"
)

type UserSubscriptionRepository interface {
	FindByUserID(userID uint) (*models.UserSubscription, error)
	Save(subscription *models.UserSubscription) error
}

type userSubscriptionRepository struct {
	db *gorm.DB
}

func NewUserSubscriptionRepository(db *gorm.DB) UserSubscriptionRepository {
	return &userSubscriptionRepository{db}
}

func (r *userSubscriptionRepository) FindByUserID(userID uint) (*models.UserSubscription, error) {
	var subscription models.UserSubscription
	err := r.db.Where("user_id = ?", userID).First(&subscription).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *userSubscriptionRepository) Save(subscription *models.UserSubscription) error {
	return r.db.Save(subscription).Error
}
