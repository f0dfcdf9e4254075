package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"userId"`
	User   *User  `json:"user,omitempty"`
	// OrderID is NULL for standalone payments; postgres rejects an empty
	// string on a uuid column, so the zero value cannot stand in for absent.
	OrderID *string `gorm:"type:uuid;index" json:"orderId"`
	// IntentID is the processor-assigned payment-intent identifier. The
	// webhook resolves payments by this rather than by the (userId, orderId)
	// metadata pair, which cannot tell two pending intents apart.
	IntentID  string        `gorm:"index" json:"intentId"`
	Amount    float64       `gorm:"not null" json:"amount"`
	Currency  string        `gorm:"size:10;not null;default:usd" json:"currency"`
	Status    PaymentStatus `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
