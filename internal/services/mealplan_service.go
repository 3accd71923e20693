package services

import (
	"context"
	"errors"
	"time"

	"nutriplan/internal/models"
	"nutriplan/internal/notifications"
	"nutriplan/internal/nutrition"
	"nutriplan/internal/openai"
	"nutriplan/internal/quota"
	"nutriplan/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// minCandidates is the smallest candidate pool the generator will work with.
const minCandidates = 4

// PlanRecommender is the external recommendation capability. Injected so
// tests can substitute a stub; the production implementation is
// openai.Client.
type PlanRecommender interface {
	RecommendDailyPlan(ctx context.Context, pc openai.PlanContext) (*openai.PlanSelection, error)
}

// DailyPlanResult is the success payload: the target date plus one meal
// representation per resolved slot. Fewer than four slots is a valid outcome.
type DailyPlanResult struct {
	Date  string                                   `json:"date"`
	Meals map[string]nutrition.MealRepresentation `json:"meals"`
}

type MealPlanService struct {
	recipes       repository.RecipeRepository
	meals         repository.MealRepository
	plans         repository.MealPlanRepository
	profiles      repository.UserProfileRepository
	health        repository.UserHealthDataRepository
	subscriptions repository.UserSubscriptionRepository
	quota         *quota.Tracker
	recommender   PlanRecommender
	events        *notifications.Publisher
	log           *logrus.Entry
}

func NewMealPlanService(
	recipes repository.RecipeRepository,
	meals repository.MealRepository,
	plans repository.MealPlanRepository,
	profiles repository.UserProfileRepository,
	health repository.UserHealthDataRepository,
	subscriptions repository.UserSubscriptionRepository,
	tracker *quota.Tracker,
	recommender PlanRecommender,
	events *notifications.Publisher,
) *MealPlanService {
	return &MealPlanService{
		recipes:       recipes,
		meals:         meals,
		plans:         plans,
		profiles:      profiles,
		health:        health,
		subscriptions: subscriptions,
		quota:         tracker,
		recommender:   recommender,
		events:        events,
		log:           logrus.WithField("service", "mealplan"),
	}
}

// GenerateDailyPlan runs the full generation pipeline for one user and date:
// quota gate, eligibility, duplicate check, candidate pool, recommendation
// call, per-slot database re-validation, idempotent persistence, then a
// single quota increment. The external service only supplies hints; every
// returned identifier is re-fetched through the owned-or-public filter before
// anything is written.
func (s *MealPlanService) GenerateDailyPlan(ctx context.Context, userID uint, day time.Time) (*DailyPlanResult, error) {
	day = truncateToDate(day)

	pro := s.hasActiveSubscription(userID)
	if !s.quota.CanGenerate(ctx, userID, pro) {
		return nil, ErrQuotaExceeded
	}

	profile, health, err := s.loadEligibility(userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.plans.ExistsForUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePlan
	}

	candidates, err := s.recipes.FindVisibleToUser(userID)
	if err != nil {
		return nil, err
	}
	if len(candidates) < minCandidates {
		return nil, ErrInsufficientCandidates
	}

	memo := nutrition.NewMemo()
	planContext := buildPlanContext(profile, health, candidates, memo)

	selection, err := s.recommender.RecommendDailyPlan(ctx, planContext)
	if err != nil {
		return nil, &ExternalServiceError{Err: err}
	}

	mealsResponse := make(map[string]nutrition.MealRepresentation)
	for _, mealType := range models.MealTypes {
		recipeID := selection.ForMealType(mealType)
		if recipeID == nil {
			continue
		}

		// The database, not the external reply, decides what is valid: an
		// identifier outside the candidate pool drops the slot silently.
		recipe, err := s.recipes.FindCandidate(*recipeID, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.WithError(err).WithField("recipe_id", *recipeID).
					Warn("candidate re-validation failed, skipping slot")
			}
			continue
		}

		meal, err := s.meals.PersistPlanSlot(userID, mealType, recipe, day)
		if err != nil {
			// Fatal for this slot only; the rest of the plan still lands.
			s.log.WithError(err).WithFields(logrus.Fields{
				"user_id":   userID,
				"meal_type": mealType,
			}).Warn("failed to persist plan slot")
			continue
		}

		mealsResponse[mealType] = nutrition.BuildMeal(meal, memo)
	}

	if err := s.plans.Create(&models.MealPlan{UserID: userID, PlanDate: day}); err != nil {
		// A concurrent request for the same date can slip past the earlier
		// existence check; the unique index catches it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePlan
		}
		return nil, err
	}

	// Exactly once per successful generation, not once per slot.
	s.quota.Increment(ctx, userID)

	s.events.PlanGenerated(notifications.PlanGeneratedEvent{
		UserID:      userID,
		PlanDate:    day.Format("2006-01-02"),
		MealTypes:   mealTypeKeys(mealsResponse),
		GeneratedAt: time.Now(),
	})

	return &DailyPlanResult{
		Date:  day.Format("2006-01-02"),
		Meals: mealsResponse,
	}, nil
}

// loadEligibility fetches profile and health data and rejects with
// ErrProfileIncomplete when either record is missing or a required field is
// unset. Empty preference/allergy/condition lists are acceptable; an empty
// target-macros map is not.
func (s *MealPlanService) loadEligibility(userID uint) (*models.UserProfile, *models.UserHealthData, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProfileIncomplete
		}
		return nil, nil, err
	}

	health, err := s.health.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProfileIncomplete
		}
		return nil, nil, err
	}

	if profile.Sex == "" || profile.ActivityLevel == "" || profile.Goal == "" {
		return nil, nil, ErrProfileIncomplete
	}
	if profile.HeightCm == nil || *profile.HeightCm <= 0 {
		return nil, nil, ErrProfileIncomplete
	}
	if profile.WeightKg == nil || *profile.WeightKg <= 0 {
		return nil, nil, ErrProfileIncomplete
	}
	if len(health.TargetMacros) == 0 {
		return nil, nil, ErrProfileIncomplete
	}

	return profile, health, nil
}

func (s *MealPlanService) hasActiveSubscription(userID uint) bool {
	subscription, err := s.subscriptions.FindByUserID(userID)
	if err != nil {
		return false
	}
	return subscription.IsActive()
}

func buildPlanContext(profile *models.UserProfile, health *models.UserHealthData, candidates []models.Recipe, memo *nutrition.Memo) openai.PlanContext {
	reduced := make([]openai.RecipeCandidate, 0, len(candidates))
	for i := range candidates {
		totals := memo.RecipeTotals(&candidates[i])
		reduced = append(reduced, openai.RecipeCandidate{
			ID:       candidates[i].ID,
			Calories: nutrition.Round1(totals.Calories),
			ProteinG: nutrition.Round1(totals.Protein),
		})
	}

	return openai.PlanContext{
		Sex:                profile.Sex,
		HeightCm:           *profile.HeightCm,
		WeightKg:           *profile.WeightKg,
		ActivityLevel:      profile.ActivityLevel,
		Goal:               profile.Goal,
		TargetMacros:       health.TargetMacros,
		DietaryPreferences: emptyIfNil(health.DietaryPreferences),
		Allergies:          emptyIfNil(health.Allergies),
		MedicalConditions:  emptyIfNil(health.MedicalConditions),
		Candidates:         reduced,
	}
}

func mealTypeKeys(meals map[string]nutrition.MealRepresentation) []string {
	keys := make([]string, 0, len(meals))
	for _, mealType := range models.MealTypes {
		if _, ok := meals[mealType]; ok {
			keys = append(keys, mealType)
		}
	}
	return keys
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
