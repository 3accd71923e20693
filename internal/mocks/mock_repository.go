package mocks

import (
	"time"

	"nutriplan/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockFoodItemRepository
type MockFoodItemRepository struct {
	mock.Mock
}

func (m *MockFoodItemRepository) Create(item *models.FoodItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockFoodItemRepository) FindByID(id uint) (*models.FoodItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) FindAll() ([]models.FoodItem, error) {
	args := m.Called()
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) Update(item *models.FoodItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockFoodItemRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(id uint) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindVisibleToUser(userID uint) ([]models.Recipe, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CountVisibleToUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) FindCandidate(id, userID uint) (*models.Recipe, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockMealRepository
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Create(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) FindByID(id uint) (*models.Meal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindAllByUserID(userID uint) ([]models.Meal, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMealRepository) PersistPlanSlot(userID uint, mealType string, recipe *models.Recipe, day time.Time) (*models.Meal, error) {
	args := m.Called(userID, mealType, recipe, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

// Shared MockMealLogRepository
type MockMealLogRepository struct {
	mock.Mock
}

func (m *MockMealLogRepository) Create(mealLog *models.MealLog) error {
	args := m.Called(mealLog)
	return args.Error(0)
}

func (m *MockMealLogRepository) FindByID(id uint) (*models.MealLog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealLog), args.Error(1)
}

func (m *MockMealLogRepository) FindAllByUserID(userID uint) ([]models.MealLog, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.MealLog), args.Error(1)
}

func (m *MockMealLogRepository) FindByUserIDAndDate(userID uint, day time.Time) ([]models.MealLog, error) {
	args := m.Called(userID, day)
	return args.Get(0).([]models.MealLog), args.Error(1)
}

func (m *MockMealLogRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
