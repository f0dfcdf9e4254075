package controllers

import (
	"net/http"

	"github.com/abdulazeespr/HungryGo/services"

	"github.com/gin-gonic/gin"
)

type MealPlanController struct {
	svc *services.MealPlanService
}

func NewMealPlanController(svc *services.MealPlanService) *MealPlanController {
	return &MealPlanController{svc: svc}
}

type CreateMealPlanInput struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type UpdateMealPlanInput struct {
	Name        string  `json:"name" binding:"omitempty,min=2"`
	Price       float64 `json:"price" binding:"omitempty,gt=0"`
	Description string  `json:"description"`
}

func (ctl *MealPlanController) List(c *gin.Context) {
	plans, err := ctl.svc.List()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (ctl *MealPlanController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	plan, err := ctl.svc.Get(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *MealPlanController) Create(c *gin.Context) {
	var input CreateMealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	plan, err := ctl.svc.Create(input.Name, input.Description, input.Price)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (ctl *MealPlanController) Update(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var input UpdateMealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	plan, err := ctl.svc.Update(id, services.MealPlanUpdate{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *MealPlanController) Delete(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	if err := ctl.svc.Delete(id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted successfully"})
}
