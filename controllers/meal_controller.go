package controllers

import (
	"net/http"

	"github.com/abdulazeespr/HungryGo/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{svc: svc}
}

type CreateMealInput struct {
	Name        string   `json:"name" binding:"required,min=2"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	MealPlanID  string   `json:"mealPlanId" binding:"required,uuid4"`
}

type UpdateMealInput struct {
	Name        string   `json:"name" binding:"omitempty,min=2"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	MealPlanID  string   `json:"mealPlanId" binding:"omitempty,uuid4"`
}

func (ctl *MealController) List(c *gin.Context) {
	meals, err := ctl.svc.List()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *MealController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	meal, err := ctl.svc.Get(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Create(c *gin.Context) {
	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	meal, err := ctl.svc.Create(input.Name, input.Description, input.Tags, input.MealPlanID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (ctl *MealController) Update(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var input UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	meal, err := ctl.svc.Update(id, services.MealUpdate{
		Name:        input.Name,
		Description: input.Description,
		Tags:        input.Tags,
		MealPlanID:  input.MealPlanID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Delete(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	if err := ctl.svc.Delete(id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
