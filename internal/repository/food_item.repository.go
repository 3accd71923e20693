package repository

import (
	"nutriplan/internal/models"

	"gorm.io/gorm"
)

type FoodItemRepository interface {
	Create(item *models.FoodItem) error
	FindByID(id uint) (*models.FoodItem, error)
	FindAll() ([]models.FoodItem, error)
	Update(item *models.FoodItem) error
	Delete(id uint) error
}

type foodItemRepository struct {
	db *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) FoodItemRepository {
	return &foodItemRepository{db}
}

// withFoodPreloads loads the nutrition profile and the serving sizes in their
// listed order. The first serving size is the composition engine's reference
// quantity, so the ordering matters.
func withFoodPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Nutrition").
		Preload("ServingSizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("serving_sizes.id ASC")
		})
}

func (r *foodItemRepository) Create(item *models.FoodItem) error {
	return r.db.Create(item).Error
}

func (r *foodItemRepository) FindByID(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := withFoodPreloads(r.db).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodItemRepository) FindAll() ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := withFoodPreloads(r.db).Order("name ASC").Find(&items).Error
	return items, err
}

// Update replaces the nutrition profile and serving sizes wholesale; the old
// rows are hard-deleted so the one-profile-per-item unique index accepts the
// re-inserted profile.
func (r *foodItemRepository) Update(item *models.FoodItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("food_item_id = ?", item.ID).Delete(&models.NutritionProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("food_item_id = ?", item.ID).Delete(&models.ServingSize{}).Error; err != nil {
			return err
		}
		return tx.Save(item).Error
	})
}

func (r *foodItemRepository) Delete(id uint) error {
	return r.db.Select("Nutrition", "ServingSizes").Delete(&models.FoodItem{ID: id}).Error
}
