package services

import (
	"errors"
	"net/http"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealUpdate struct {
	Name        string
	Description string
	Tags        []string
	MealPlanID  string
}

func (s *MealService) List() ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(id string) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewApiError(http.StatusNotFound, "Meal not found")
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Create(name, description string, tags []string, mealPlanID string) (*models.Meal, error) {
	if err := s.planExists(mealPlanID); err != nil {
		return nil, err
	}

	meal := models.Meal{
		Name:        name,
		Description: description,
		Tags:        tags,
		MealPlanID:  mealPlanID,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Update(id string, in MealUpdate) (*models.Meal, error) {
	meal, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.MealPlanID != "" && in.MealPlanID != meal.MealPlanID {
		if err := s.planExists(in.MealPlanID); err != nil {
			return nil, err
		}
		meal.MealPlanID = in.MealPlanID
	}
	if in.Name != "" {
		meal.Name = in.Name
	}
	if in.Description != "" {
		meal.Description = in.Description
	}
	if in.Tags != nil {
		meal.Tags = in.Tags
	}

	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Meal{}, "id = ?", id).Error
}

func (s *MealService) planExists(planID string) error {
	var count int64
	if err := s.db.Model(&models.MealPlan{}).Where("id = ?", planID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NewApiError(http.StatusNotFound, "Meal plan not found")
	}
	return nil
}
