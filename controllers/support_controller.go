package controllers

import (
	"net/http"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/services"

	"github.com/gin-gonic/gin"
)

type SupportController struct {
	svc *services.SupportService
}

func NewSupportController(svc *services.SupportService) *SupportController {
	return &SupportController{svc: svc}
}

type CreateTicketInput struct {
	Subject  string `json:"subject" binding:"required,min=2"`
	Category string `json:"category" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

type TicketResponseInput struct {
	Message string `json:"message" binding:"required"`
}

type TicketStatusInput struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved closed"`
}

func (ctl *SupportController) Create(c *gin.Context) {
	var input CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	ticket, err := ctl.svc.Create(c.GetString("userID"), input.Subject, input.Category, input.Message)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (ctl *SupportController) List(c *gin.Context) {
	tickets, err := ctl.svc.ListFor(actorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (ctl *SupportController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	ticket, err := ctl.svc.Get(actorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (ctl *SupportController) Respond(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var input TicketResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	ticket, err := ctl.svc.Respond(actorFrom(c), id, input.Message)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (ctl *SupportController) UpdateStatus(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var input TicketStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	ticket, err := ctl.svc.UpdateStatus(id, models.TicketStatus(input.Status))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
