package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SexMale   = "male"
	SexFemale = "female"
)

const (
	ActivityLevelSedentary = "sedentary"
	ActivityLevelLight     = "light"
	ActivityLevelModerate  = "moderate"
	ActivityLevelActive    = "active"
)

const (
	GoalMaintenance = "maintenance"
	GoalCutting     = "cutting"
	GoalBulking     = "bulking"
	GoalRecomp      = "recomp"
)

const (
	MeasurementUnitsMetric   = "metric"
	MeasurementUnitsImperial = "imperial"
)

type UserProfile struct {
	ID                uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt         time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID            uint           `gorm:"unique" json:"user_id" example:"1"`
	DisplayName       string         `json:"display_name" example:"Omar"`
	PreferredCurrency string         `gorm:"default:EGP" json:"preferred_currency" example:"EGP"`
	BirthDate         *time.Time     `json:"birth_date,omitempty" example:"1995-04-20T00:00:00Z"`
	Sex               string         `json:"sex" example:"male"`
	HeightCm          *int           `json:"height_cm" example:"175"`
	WeightKg          *float64       `json:"weight_kg" example:"80"`
	MeasurementUnits  string         `gorm:"default:metric" json:"measurement_units" example:"metric"`
	ActivityLevel     string         `gorm:"default:sedentary" json:"activity_level" example:"moderate"`
	Goal              string         `json:"goal" example:"maintenance"`
	LastActive        time.Time      `json:"last_active" example:"2023-01-01T00:00:00Z"`
}
