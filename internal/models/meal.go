package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// MealTypes lists the valid meal types in plan-slot order.
var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

func IsValidMealType(mealType string) bool {
	for _, t := range MealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}

// Meal composes direct ingredients and/or referenced recipes. Nutrition
// totals are always derived from current ingredient data, never stored.
type Meal struct {
	ID          uint             `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time        `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time        `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint             `gorm:"index" json:"user_id" example:"1"`
	User        User             `gorm:"foreignKey:UserID" json:"-"`
	Name        string           `json:"name" example:"Grilled Chicken Bowl"`
	MealType    string           `gorm:"index" json:"meal_type" example:"lunch"`
	Ingredients []MealIngredient `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Recipes     []*Recipe        `gorm:"many2many:meal_recipes" json:"recipes,omitempty"`
}

type MealIngredient struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	MealID     uint           `gorm:"index" json:"meal_id" example:"1"`
	FoodItemID uint           `gorm:"index" json:"food_item_id" example:"1"`
	FoodItem   FoodItem       `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"food_item"`
	Quantity   float64        `json:"quantity" example:"1.5"`
	Unit       string         `json:"unit" example:"cup"`
}

// MealLog binds a meal to the calendar date it was consumed on. A meal can be
// logged on any number of days.
type MealLog struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID     uint           `gorm:"index" json:"user_id" example:"1"`
	User       User           `gorm:"foreignKey:UserID" json:"-"`
	MealID     uint           `gorm:"index" json:"meal_id" example:"1"`
	Meal       Meal           `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"-"`
	ConsumedAt time.Time      `gorm:"type:date;index" json:"consumed_at" example:"2023-01-01T00:00:00Z"`
}

// MealPlan records that the AI generator produced a daily plan for a user.
// At most one generated plan per user per calendar date.
type MealPlan struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"uniqueIndex:idx_meal_plan_user_date" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	PlanDate  time.Time      `gorm:"type:date;uniqueIndex:idx_meal_plan_user_date" json:"plan_date" example:"2023-01-01T00:00:00Z"`
}
