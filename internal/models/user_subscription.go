package models

import (
	"time"

	"gorm.io/gorm"
)

type UserSubscription struct {
	ID               uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt        time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID           uint           `gorm:"unique" json:"user_id" example:"1"`
	IsPro            bool           `gorm:"default:false" json:"is_pro" example:"true"`
	CurrentPeriodEnd *time.Time     `json:"current_period_end,omitempty" example:"2023-02-01T00:00:00Z"`
}

// IsActive reports whether the subscription currently grants pro limits: the
// pro flag is set and the paid-through timestamp is in the future.
func (s *UserSubscription) IsActive() bool {
	if s == nil || !s.IsPro {
		return false
	}
	return s.CurrentPeriodEnd != nil && s.CurrentPeriodEnd.After(time.Now())
}
