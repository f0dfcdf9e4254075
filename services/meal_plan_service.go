package services

import (
	"errors"
	"net/http"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"gorm.io/gorm"
)

type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

type MealPlanUpdate struct {
	Name        string
	Description string
	Price       float64
}

func (s *MealPlanService) List() ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.Preload("Meals").Find(&plans).Error
	return plans, err
}

func (s *MealPlanService) Get(id string) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := s.db.Preload("Meals").First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewApiError(http.StatusNotFound, "Meal plan not found")
		}
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) Create(name, description string, price float64) (*models.MealPlan, error) {
	plan := models.MealPlan{Name: name, Description: description, Price: price}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) Update(id string, in MealPlanUpdate) (*models.MealPlan, error) {
	plan, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		plan.Name = in.Name
	}
	if in.Description != "" {
		plan.Description = in.Description
	}
	if in.Price > 0 {
		plan.Price = in.Price
	}

	if err := s.db.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(&models.MealPlan{}, "id = ?", id).Error
}
