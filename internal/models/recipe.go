package models

import (
	"time"

	"gorm.io/gorm"
)

type Recipe struct {
	ID           uint               `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time          `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time          `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-" swaggerignore:"true"`
	UserID       uint               `gorm:"index" json:"user_id" example:"1"`
	User         User               `gorm:"foreignKey:UserID" json:"-"`
	Name         string             `gorm:"uniqueIndex;not null" json:"name" example:"Grilled Chicken Bowl"`
	Description  string             `json:"description" example:"High protein lunch bowl"`
	IsPublic     bool               `gorm:"default:false" json:"is_public" example:"true"`
	Instructions []Instruction      `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"instructions,omitempty"`
	Ingredients  []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

// Instruction is one ordered preparation step. Step numbers are 1-based and
// unique per recipe.
type Instruction struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	RecipeID   uint           `gorm:"uniqueIndex:idx_instruction_recipe_step" json:"recipe_id" example:"1"`
	StepNumber int            `gorm:"uniqueIndex:idx_instruction_recipe_step" json:"step_number" example:"1"`
	Text       string         `json:"text" example:"Grill the chicken for 8 minutes per side"`
}

type RecipeIngredient struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	RecipeID   uint           `gorm:"index" json:"recipe_id" example:"1"`
	FoodItemID uint           `gorm:"index" json:"food_item_id" example:"1"`
	FoodItem   FoodItem       `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"food_item"`
	Quantity   float64        `json:"quantity" example:"2"`
	Unit       string         `json:"unit" example:"fillet"`
}
