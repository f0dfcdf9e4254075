package services

import (
	"errors"
	"net/http"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"gorm.io/gorm"
)

type SupportService struct {
	db *gorm.DB
}

func NewSupportService(db *gorm.DB) *SupportService {
	return &SupportService{db: db}
}

func (s *SupportService) Create(userID, subject, category, message string) (*models.SupportTicket, error) {
	ticket := models.SupportTicket{
		UserID:   userID,
		Subject:  subject,
		Category: category,
		Message:  message,
		Status:   models.TicketOpen,
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListFor returns the caller's own tickets; agents and admins see the whole
// queue.
func (s *SupportService) ListFor(actor Actor) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	q := s.db.Preload("Responses")
	if IsStaff(actor) {
		q = q.Preload("User")
	} else {
		q = q.Where("user_id = ?", actor.ID)
	}
	err := q.Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

func (s *SupportService) Get(actor Actor, id string) (*models.SupportTicket, error) {
	ticket, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !IsStaff(actor) && actor.ID != ticket.UserID {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to view this ticket")
	}
	return ticket, nil
}

// Respond appends a reply. The first staff reply moves an open ticket to
// in_progress.
func (s *SupportService) Respond(actor Actor, id, message string) (*models.SupportTicket, error) {
	ticket, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}

	response := models.TicketResponse{
		TicketID: ticket.ID,
		UserID:   actor.ID,
		From:     actor.Name,
		Message:  message,
	}
	if err := s.db.Create(&response).Error; err != nil {
		return nil, err
	}

	if IsStaff(actor) && ticket.Status == models.TicketOpen {
		ticket.Status = models.TicketInProgress
		if err := s.db.Save(ticket).Error; err != nil {
			return nil, err
		}
	}

	return s.find(ticket.ID)
}

func (s *SupportService) UpdateStatus(id string, to models.TicketStatus) (*models.SupportTicket, error) {
	ticket, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if !to.Valid() {
		return nil, utils.NewApiError(http.StatusBadRequest, "Invalid status")
	}
	if to != ticket.Status && !ticket.Status.CanTransition(to) {
		return nil, utils.NewApiError(http.StatusBadRequest, "Invalid status transition")
	}

	ticket.Status = to
	if err := s.db.Save(ticket).Error; err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *SupportService) find(id string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := s.db.Preload("Responses").First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewApiError(http.StatusNotFound, "Ticket not found")
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
