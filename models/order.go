package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID         string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string      `gorm:"type:uuid;index;not null" json:"userId"`
	User       *User       `json:"user,omitempty"`
	MealPlanID string      `gorm:"type:uuid;not null" json:"mealPlanId"`
	MealPlan   *MealPlan   `json:"mealPlan,omitempty"`
	Status     OrderStatus `gorm:"size:20;not null;default:pending" json:"status"`
	StartDate  time.Time   `json:"startDate"`
	OrderMeals []OrderMeal `json:"orderMeals"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderMeal pins one meal of the plan to a delivery day and slot
// (breakfast/lunch/dinner).
type OrderMeal struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OrderID string `gorm:"type:uuid;index;not null" json:"orderId"`
	MealID  string `gorm:"type:uuid;not null" json:"mealId"`
	Meal    *Meal  `json:"meal,omitempty"`
	Day     string `gorm:"not null" json:"day"`
	Type    string `gorm:"not null" json:"type"`
}
