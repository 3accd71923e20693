package repository

import (
	"nutriplan/internal/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	FindByID(id uint) (*models.Recipe, error)
	// FindVisibleToUser returns the candidate pool: recipes owned by the
	// user or flagged public, fully loaded for nutrition computation.
	FindVisibleToUser(userID uint) ([]models.Recipe, error)
	CountVisibleToUser(userID uint) (int64, error)
	// FindCandidate re-fetches one recipe with the owned-or-public filter
	// applied again; used to validate externally supplied identifiers.
	FindCandidate(id, userID uint) (*models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db}
}

func withRecipePreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Instructions", func(db *gorm.DB) *gorm.DB {
			return db.Order("instructions.step_number ASC")
		}).
		Preload("Ingredients.FoodItem.Nutrition").
		Preload("Ingredients.FoodItem.ServingSizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("serving_sizes.id ASC")
		})
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := withRecipePreloads(r.db).First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindVisibleToUser(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := withRecipePreloads(r.db).
		Where("user_id = ? OR is_public = ?", userID, true).
		Order("recipes.id ASC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) CountVisibleToUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).
		Where("user_id = ? OR is_public = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *recipeRepository) FindCandidate(id, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := withRecipePreloads(r.db).
		Where("id = ? AND (user_id = ? OR is_public = ?)", id, userID, true).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update replaces the recipe's instructions and ingredients wholesale. The
// old child rows must go first, hard-deleted, or the per-recipe step-number
// unique index rejects the re-inserted steps.
func (r *recipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("recipe_id = ?", recipe.ID).Delete(&models.Instruction{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Save(recipe).Error
	})
}

func (r *recipeRepository) Delete(id uint) error {
	return r.db.Select("Instructions", "Ingredients").Delete(&models.Recipe{ID: id}).Error
}
