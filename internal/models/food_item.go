package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionBasis is the reference quantity all nutrition profile values are
// expressed per (e.g. 100 g or 100 ml).
const NutritionBasis = 100.0

type FoodItem struct {
	ID            uint              `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time         `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time         `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-" swaggerignore:"true"`
	Name          string            `gorm:"not null" json:"name" example:"Chicken Breast"`
	Price         *float64          `json:"price" example:"50"`
	PriceQuantity *float64          `json:"price_quantity" example:"1000"`
	PriceUnit     string            `json:"price_unit" example:"g"`
	Nutrition     *NutritionProfile `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"nutrition,omitempty"`
	ServingSizes  []ServingSize     `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"serving_sizes,omitempty"`
}

// PricePerGramProtein is the cost-efficiency metric: how much one gram of
// protein costs for this item. Defined only when price, price quantity and
// protein are all strictly positive; the second return value reports whether
// the metric is defined. Callers must exclude undefined items from rankings
// rather than treating them as zero.
func (f *FoodItem) PricePerGramProtein() (float64, bool) {
	if f.Price == nil || *f.Price <= 0 {
		return 0, false
	}
	if f.PriceQuantity == nil || *f.PriceQuantity <= 0 {
		return 0, false
	}
	if f.Nutrition == nil || f.Nutrition.Protein <= 0 {
		return 0, false
	}
	proteinGrams := f.Nutrition.Protein * (*f.PriceQuantity / NutritionBasis)
	return *f.Price / proteinGrams, true
}

type NutritionProfile struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FoodItemID uint           `gorm:"uniqueIndex" json:"food_item_id" example:"1"`

	// Macronutrients, per NutritionBasis units of the food item.
	Calories      float64 `json:"calories" example:"165"`
	Protein       float64 `json:"protein" example:"31"`
	ProteinType   string  `gorm:"default:other" json:"protein_type" example:"meat"`
	Carbohydrates float64 `json:"carbohydrates" example:"0"`
	Fats          float64 `json:"fats" example:"3.6"`

	// Micronutrients, optional.
	Fiber     *float64           `json:"fiber,omitempty" example:"2.5"`
	Sugar     *float64           `json:"sugar,omitempty" example:"1.1"`
	Sodium    *float64           `json:"sodium,omitempty" example:"74"`
	Iron      *float64           `json:"iron,omitempty" example:"0.4"`
	Calcium   *float64           `json:"calcium,omitempty" example:"15"`
	Potassium *float64           `json:"potassium,omitempty" example:"256"`
	Vitamins  map[string]float64 `gorm:"serializer:json" json:"vitamins,omitempty" swaggertype:"object"`
}

const (
	ProteinTypeVegan = "vegan"
	ProteinTypeDairy = "dairy"
	ProteinTypeMeat  = "meat"
	ProteinTypeOther = "other"
)

type ServingSize struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FoodItemID  uint           `gorm:"index" json:"food_item_id" example:"1"`
	Description string         `json:"description" example:"1 fillet"`
	Quantity    float64        `json:"quantity" example:"120"`
	Unit        string         `json:"unit" example:"g"`
}
