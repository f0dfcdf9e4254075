package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A priced catalog grouping of meals a user can subscribe to or order from.
type MealPlan struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Meals       []Meal    `json:"meals"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (mp *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if mp.ID == "" {
		mp.ID = uuid.NewString()
	}
	return nil
}

type Meal struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Tags        StringList `json:"tags"`
	MealPlanID  string     `gorm:"type:uuid;index;not null" json:"mealPlanId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
