package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subscription struct {
	ID         string             `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string             `gorm:"type:uuid;index;not null" json:"userId"`
	User       *User              `json:"user,omitempty"`
	MealPlanID string             `gorm:"type:uuid;not null" json:"mealPlanId"`
	MealPlan   *MealPlan          `json:"mealPlan,omitempty"`
	Status     SubscriptionStatus `gorm:"size:20;not null;default:active" json:"status"`
	StartDate  time.Time          `json:"startDate"`
	EndDate    *time.Time         `json:"endDate,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
