package controllers

import (
	"net/http"
	"time"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

type OrderMealInput struct {
	MealID string `json:"mealId" binding:"required,uuid4"`
	Day    string `json:"day" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

type CreateOrderInput struct {
	PlanID    string           `json:"planId" binding:"required,uuid4"`
	StartDate time.Time        `json:"startDate" binding:"required"`
	Meals     []OrderMealInput `json:"meals" binding:"omitempty,dive"`
}

type UpdateOrderInput struct {
	Status    string     `json:"status" binding:"omitempty,oneof=pending confirmed delivered cancelled"`
	StartDate *time.Time `json:"startDate"`
}

func (ctl *OrderController) ListMine(c *gin.Context) {
	orders, err := ctl.svc.ListForUser(c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctl *OrderController) ListAll(c *gin.Context) {
	orders, err := ctl.svc.ListAll()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctl *OrderController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	order, err := ctl.svc.Get(actorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (ctl *OrderController) Create(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	meals := make([]services.OrderMealInput, 0, len(input.Meals))
	for _, m := range input.Meals {
		meals = append(meals, services.OrderMealInput{MealID: m.MealID, Day: m.Day, Type: m.Type})
	}

	order, err := ctl.svc.Create(c.GetString("userID"), input.PlanID, input.StartDate, meals)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (ctl *OrderController) Update(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	order, err := ctl.svc.Update(actorFrom(c), id, services.OrderUpdate{
		Status:    models.OrderStatus(input.Status),
		StartDate: input.StartDate,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (ctl *OrderController) Cancel(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	order, err := ctl.svc.Cancel(actorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, order)
}
