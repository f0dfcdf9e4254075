package controllers

import (
	"net/http"
	"time"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	svc *services.SubscriptionService
}

func NewSubscriptionController(svc *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{svc: svc}
}

type CreateSubscriptionInput struct {
	PlanID    string     `json:"planId" binding:"required,uuid4"`
	StartDate *time.Time `json:"startDate"`
}

type UpdateSubscriptionInput struct {
	Status  string     `json:"status" binding:"omitempty,oneof=active paused cancelled"`
	EndDate *time.Time `json:"endDate"`
}

func (ctl *SubscriptionController) ListMine(c *gin.Context) {
	subs, err := ctl.svc.ListForUser(c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (ctl *SubscriptionController) ListAll(c *gin.Context) {
	subs, err := ctl.svc.ListAll()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (ctl *SubscriptionController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	sub, err := ctl.svc.Get(actorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (ctl *SubscriptionController) Create(c *gin.Context) {
	var input CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	sub, err := ctl.svc.Create(c.GetString("userID"), input.PlanID, input.StartDate)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (ctl *SubscriptionController) Update(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var input UpdateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	sub, err := ctl.svc.Update(actorFrom(c), id, services.SubscriptionUpdate{
		Status:  models.SubscriptionStatus(input.Status),
		EndDate: input.EndDate,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (ctl *SubscriptionController) Cancel(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	sub, err := ctl.svc.Cancel(actorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (ctl *SubscriptionController) Pause(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	sub, err := ctl.svc.Pause(actorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (ctl *SubscriptionController) Resume(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	sub, err := ctl.svc.Resume(actorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
