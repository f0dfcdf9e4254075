package controllers

import (
	"net/http"

	"github.com/abdulazeespr/HungryGo/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

type UpdateUserInput struct {
	Name   string `json:"name" binding:"omitempty,min=2"`
	Email  string `json:"email" binding:"omitempty,email"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
	Role   string `json:"role" binding:"omitempty,oneof=customer admin agent"`
}

func (ctl *UserController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	user, err := ctl.svc.Get(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) Update(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := ctl.svc.Update(actorFrom(c), id, services.UserUpdate{
		Name:   input.Name,
		Email:  input.Email,
		Status: input.Status,
		Role:   input.Role,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.svc.List()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	if err := ctl.svc.Delete(id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
