package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportTicket struct {
	ID        string           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string           `gorm:"type:uuid;index;not null" json:"userId"`
	User      *User            `json:"user,omitempty"`
	Subject   string           `gorm:"not null" json:"subject"`
	Category  string           `gorm:"not null" json:"category"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Status    TicketStatus     `gorm:"size:20;not null;default:open" json:"status"`
	Responses []TicketResponse `gorm:"foreignKey:TicketID" json:"responses"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func (t *SupportTicket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type TicketResponse struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	TicketID  string    `gorm:"type:uuid;index;not null" json:"ticketId"`
	UserID    string    `gorm:"type:uuid;not null" json:"userId"`
	From      string    `gorm:"not null" json:"from"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *TicketResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
