package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"nutriplan/internal/models"
	"nutriplan/internal/openai"
	"nutriplan/internal/quota"
	"nutriplan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeCounterStore struct {
	used   int64
	getErr error
}

func (f *fakeCounterStore) Get(ctx context.Context, key string) (int64, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	return f.used, nil
}

func (f *fakeCounterStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	f.used++
	return f.used, nil
}

type stubRecommender struct {
	selection   *openai.PlanSelection
	err         error
	lastContext openai.PlanContext
	calls       int
}

func (s *stubRecommender) RecommendDailyPlan(ctx context.Context, pc openai.PlanContext) (*openai.PlanSelection, error) {
	s.calls++
	s.lastContext = pc
	if s.err != nil {
		return nil, s.err
	}
	return s.selection, nil
}

type serviceFixture struct {
	db          *gorm.DB
	service     *MealPlanService
	store       *fakeCounterStore
	recommender *stubRecommender
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserHealthData{},
		&models.UserSubscription{},
		&models.FoodItem{},
		&models.NutritionProfile{},
		&models.ServingSize{},
		&models.Recipe{},
		&models.Instruction{},
		&models.RecipeIngredient{},
		&models.Meal{},
		&models.MealIngredient{},
		&models.MealLog{},
		&models.MealPlan{},
	))

	store := &fakeCounterStore{}
	recommender := &stubRecommender{}
	service := NewMealPlanService(
		repository.NewRecipeRepository(db),
		repository.NewMealRepository(db),
		repository.NewMealPlanRepository(db),
		repository.NewUserProfileRepository(db),
		repository.NewUserHealthDataRepository(db),
		repository.NewUserSubscriptionRepository(db),
		quota.NewTracker(store),
		recommender,
		nil,
	)
	return &serviceFixture{db: db, service: service, store: store, recommender: recommender}
}

func (f *serviceFixture) seedProfile(t *testing.T, userID uint) {
	t.Helper()
	height := 180
	weight := 78.5
	require.NoError(t, f.db.Create(&models.UserProfile{
		UserID:        userID,
		Sex:           models.SexMale,
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: models.ActivityLevelModerate,
		Goal:          models.GoalMaintenance,
	}).Error)
	require.NoError(t, f.db.Create(&models.UserHealthData{
		UserID:       userID,
		TargetMacros: map[string]float64{"calories": 2200, "protein_g": 140},
	}).Error)
}

func (f *serviceFixture) seedRecipe(t *testing.T, userID uint, name string, public bool) *models.Recipe {
	t.Helper()
	food := &models.FoodItem{
		Name: name + " base",
		Nutrition: &models.NutritionProfile{
			Calories: 165, Protein: 31, Fats: 3.6,
		},
		ServingSizes: []models.ServingSize{
			{Description: "portion", Quantity: 100, Unit: "g"},
		},
	}
	require.NoError(t, f.db.Create(food).Error)

	recipe := &models.Recipe{
		UserID:   userID,
		Name:     name,
		IsPublic: public,
		Ingredients: []models.RecipeIngredient{
			// One full 100g portion, so every seeded recipe totals 165
			// calories and 31g protein.
			{FoodItemID: food.ID, Quantity: 100, Unit: "portion"},
		},
	}
	require.NoError(t, f.db.Create(recipe).Error)
	return recipe
}

func (f *serviceFixture) seedCatalog(t *testing.T, userID uint) []*models.Recipe {
	t.Helper()
	return []*models.Recipe{
		f.seedRecipe(t, userID, "Oatmeal Bowl", false),
		f.seedRecipe(t, userID, "Chicken Bowl", false),
		f.seedRecipe(t, userID, "Salmon Plate", false),
		f.seedRecipe(t, userID, "Yogurt Snack", false),
	}
}

func fullSelection(recipes []*models.Recipe) *openai.PlanSelection {
	return &openai.PlanSelection{
		Breakfast: &recipes[0].ID,
		Lunch:     &recipes[1].ID,
		Dinner:    &recipes[2].ID,
		Snack:     &recipes[3].ID,
	}
}

var testDay = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestGenerateDailyPlanSuccess(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	f.recommender.selection = fullSelection(recipes)

	result, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", result.Date)
	assert.Len(t, result.Meals, 4)
	assert.Contains(t, result.Meals, models.MealTypeBreakfast)
	assert.Contains(t, result.Meals, models.MealTypeSnack)

	// The breakfast slot carries the selected recipe with computed totals.
	breakfast := result.Meals[models.MealTypeBreakfast]
	require.Len(t, breakfast.Recipes, 1)
	assert.Equal(t, "Oatmeal Bowl", breakfast.Recipes[0].Name)
	assert.Equal(t, 165.0, breakfast.Calories)

	// One plan row, one quota increment, four meal logs.
	var planCount, logCount int64
	f.db.Model(&models.MealPlan{}).Where("user_id = ?", 1).Count(&planCount)
	f.db.Model(&models.MealLog{}).Where("user_id = ?", 1).Count(&logCount)
	assert.Equal(t, int64(1), planCount)
	assert.Equal(t, int64(4), logCount)
	assert.Equal(t, int64(1), f.store.used)
}

func TestGenerateDailyPlanDuplicateDate(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	f.recommender.selection = fullSelection(recipes)

	_, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	require.NoError(t, err)

	// Same calendar date at a different wall-clock time is still a duplicate.
	_, err = f.service.GenerateDailyPlan(context.Background(), 1, testDay.Add(5*time.Hour))
	assert.ErrorIs(t, err, ErrDuplicatePlan)
	assert.Equal(t, int64(1), f.store.used)

	// A different date generates fine.
	_, err = f.service.GenerateDailyPlan(context.Background(), 1, testDay.AddDate(0, 0, 1))
	assert.NoError(t, err)
}

// stalePlanRepository answers the existence check from a snapshot taken
// before a concurrent request committed its row, so Create runs into the
// per-user-per-date unique index.
type stalePlanRepository struct {
	repository.MealPlanRepository
}

func (r *stalePlanRepository) ExistsForUserAndDate(userID uint, day time.Time) (bool, error) {
	return false, nil
}

func TestGenerateDailyPlanDuplicateRaceMapsTo409(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	f.recommender.selection = fullSelection(recipes)

	require.NoError(t, f.db.Create(&models.MealPlan{UserID: 1, PlanDate: truncateToDate(testDay)}).Error)

	racy := NewMealPlanService(
		repository.NewRecipeRepository(f.db),
		repository.NewMealRepository(f.db),
		&stalePlanRepository{repository.NewMealPlanRepository(f.db)},
		repository.NewUserProfileRepository(f.db),
		repository.NewUserHealthDataRepository(f.db),
		repository.NewUserSubscriptionRepository(f.db),
		quota.NewTracker(f.store),
		f.recommender,
		nil,
	)

	_, err := racy.GenerateDailyPlan(context.Background(), 1, testDay)
	assert.ErrorIs(t, err, ErrDuplicatePlan)
}

func TestGenerateDailyPlanInsufficientCandidates(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	f.seedRecipe(t, 1, "Only One", false)
	f.seedRecipe(t, 1, "Only Two", false)
	f.seedRecipe(t, 1, "Only Three", false)

	_, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	assert.ErrorIs(t, err, ErrInsufficientCandidates)

	// Rejected before any external call or write.
	assert.Equal(t, 0, f.recommender.calls)
	var planCount int64
	f.db.Model(&models.MealPlan{}).Count(&planCount)
	assert.Equal(t, int64(0), planCount)
	assert.Equal(t, int64(0), f.store.used)
}

func TestGenerateDailyPlanPublicRecipesCount(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	own := f.seedRecipe(t, 1, "Own Recipe", false)
	others := []*models.Recipe{
		own,
		f.seedRecipe(t, 2, "Public One", true),
		f.seedRecipe(t, 2, "Public Two", true),
		f.seedRecipe(t, 2, "Public Three", true),
	}
	f.recommender.selection = fullSelection(others)

	result, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	require.NoError(t, err)
	assert.Len(t, result.Meals, 4)
}

func TestGenerateDailyPlanProfileIncomplete(t *testing.T) {
	f := newServiceFixture(t)
	f.seedCatalog(t, 1)

	// No profile at all.
	_, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	// Profile present but health data has no target macros.
	height := 180
	weight := 78.5
	require.NoError(t, f.db.Create(&models.UserProfile{
		UserID:        2,
		Sex:           models.SexFemale,
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: models.ActivityLevelLight,
		Goal:          models.GoalCutting,
	}).Error)
	require.NoError(t, f.db.Create(&models.UserHealthData{UserID: 2}).Error)

	_, err = f.service.GenerateDailyPlan(context.Background(), 2, testDay)
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestGenerateDailyPlanQuotaExceeded(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	f.recommender.selection = fullSelection(recipes)
	f.store.used = quota.FreeDailyLimit

	_, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, 0, f.recommender.calls)
}

func TestGenerateDailyPlanProSubscriberHigherLimit(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	f.recommender.selection = fullSelection(recipes)
	f.store.used = quota.FreeDailyLimit

	periodEnd := time.Now().Add(30 * 24 * time.Hour)
	require.NoError(t, f.db.Create(&models.UserSubscription{
		UserID:           1,
		IsPro:            true,
		CurrentPeriodEnd: &periodEnd,
	}).Error)

	_, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	assert.NoError(t, err)
}

func TestGenerateDailyPlanExpiredSubscriptionUsesFreeLimit(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	f.recommender.selection = fullSelection(recipes)
	f.store.used = quota.FreeDailyLimit

	periodEnd := time.Now().Add(-24 * time.Hour)
	require.NoError(t, f.db.Create(&models.UserSubscription{
		UserID:           1,
		IsPro:            true,
		CurrentPeriodEnd: &periodEnd,
	}).Error)

	_, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestGenerateDailyPlanExternalServiceError(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	f.seedCatalog(t, 1)
	f.recommender.err = errors.New("connection timed out")

	_, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)

	var extErr *ExternalServiceError
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, err.Error(), "connection timed out")

	// Nothing persisted, nothing counted.
	var planCount int64
	f.db.Model(&models.MealPlan{}).Count(&planCount)
	assert.Equal(t, int64(0), planCount)
	assert.Equal(t, int64(0), f.store.used)
}

// Identifiers the database cannot re-validate drop their slot silently; the
// remaining slots still land and the generation still counts.
func TestGenerateDailyPlanSkipsInvalidSlots(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	foreign := f.seedRecipe(t, 2, "Foreign Private", false)

	unknown := uint(99999)
	f.recommender.selection = &openai.PlanSelection{
		Breakfast: &unknown,
		Lunch:     &recipes[1].ID,
		Dinner:    &foreign.ID,
		Snack:     &recipes[3].ID,
	}

	result, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	require.NoError(t, err)
	assert.Len(t, result.Meals, 2)
	assert.Contains(t, result.Meals, models.MealTypeLunch)
	assert.Contains(t, result.Meals, models.MealTypeSnack)
	assert.NotContains(t, result.Meals, models.MealTypeBreakfast)
	assert.NotContains(t, result.Meals, models.MealTypeDinner)

	var planCount int64
	f.db.Model(&models.MealPlan{}).Where("user_id = ?", 1).Count(&planCount)
	assert.Equal(t, int64(1), planCount)
	assert.Equal(t, int64(1), f.store.used)
}

func TestGenerateDailyPlanNilSlotsSkipped(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	f.recommender.selection = &openai.PlanSelection{
		Breakfast: &recipes[0].ID,
	}

	result, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	require.NoError(t, err)
	assert.Len(t, result.Meals, 1)
}

func TestGenerateDailyPlanContextReducesCandidates(t *testing.T) {
	f := newServiceFixture(t)
	f.seedProfile(t, 1)
	recipes := f.seedCatalog(t, 1)
	f.recommender.selection = fullSelection(recipes)

	_, err := f.service.GenerateDailyPlan(context.Background(), 1, testDay)
	require.NoError(t, err)

	pc := f.recommender.lastContext
	assert.Equal(t, models.SexMale, pc.Sex)
	assert.Equal(t, 180, pc.HeightCm)
	require.Len(t, pc.Candidates, 4)
	// Candidates carry only id, calories and protein, rounded.
	assert.Equal(t, recipes[0].ID, pc.Candidates[0].ID)
	assert.Equal(t, 165.0, pc.Candidates[0].Calories)
	assert.Equal(t, 31.0, pc.Candidates[0].ProteinG)
	// Nil preference lists arrive as empty slices, never nil.
	assert.NotNil(t, pc.DietaryPreferences)
	assert.NotNil(t, pc.Allergies)
	assert.NotNil(t, pc.MedicalConditions)
}
