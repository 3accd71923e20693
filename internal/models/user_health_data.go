package models

import (
	"time"

	"gorm.io/gorm"
)

type UserHealthData struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"unique" json:"user_id" example:"1"`

	DietaryPreferences []string `gorm:"serializer:json" json:"dietary_preferences" swaggertype:"array,string"`
	Allergies          []string `gorm:"serializer:json" json:"allergies" swaggertype:"array,string"`
	MedicalConditions  []string `gorm:"serializer:json" json:"medical_conditions" swaggertype:"array,string"`

	// TargetMacros holds the daily targets, e.g.
	// {"calories": 2000, "protein_g": 150, "carbs_g": 200, "fats_g": 70}.
	TargetMacros map[string]float64 `gorm:"serializer:json" json:"target_macros" swaggertype:"object"`
}
