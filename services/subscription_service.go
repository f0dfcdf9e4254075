package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"gorm.io/gorm"
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

type SubscriptionUpdate struct {
	Status  models.SubscriptionStatus
	EndDate *time.Time
}

func (s *SubscriptionService) ListForUser(userID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := s.db.Preload("MealPlan").Where("user_id = ?", userID).Find(&subs).Error
	return subs, err
}

func (s *SubscriptionService) ListAll() ([]models.Subscription, error) {
	var subs []models.Subscription
	err := s.db.Preload("User").Preload("MealPlan").Find(&subs).Error
	return subs, err
}

func (s *SubscriptionService) Get(actor Actor, id string) (*models.Subscription, error) {
	sub, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, sub.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to view this subscription")
	}
	return sub, nil
}

func (s *SubscriptionService) Create(userID, planID string, startDate *time.Time) (*models.Subscription, error) {
	var count int64
	if err := s.db.Model(&models.MealPlan{}).Where("id = ?", planID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, utils.NewApiError(http.StatusNotFound, "Meal plan not found")
	}

	var existing int64
	err := s.db.Model(&models.Subscription{}).
		Where("user_id = ? AND meal_plan_id = ? AND status = ?", userID, planID, models.SubscriptionActive).
		Count(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, utils.NewApiError(http.StatusBadRequest, "Already subscribed to this plan")
	}

	start := time.Now()
	if startDate != nil {
		start = *startDate
	}

	sub := models.Subscription{
		UserID:     userID,
		MealPlanID: planID,
		Status:     models.SubscriptionActive,
		StartDate:  start,
	}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionService) Update(actor Actor, id string, in SubscriptionUpdate) (*models.Subscription, error) {
	sub, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, sub.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to update this subscription")
	}

	if in.Status != "" && in.Status != sub.Status {
		if !in.Status.Valid() || !sub.Status.CanTransition(in.Status) {
			return nil, utils.NewApiError(http.StatusBadRequest, "Invalid status transition")
		}
		sub.Status = in.Status
		if in.Status == models.SubscriptionCancelled {
			now := time.Now()
			sub.EndDate = &now
		}
	}
	if in.EndDate != nil {
		sub.EndDate = in.EndDate
	}

	if err := s.db.Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Cancel(actor Actor, id string) (*models.Subscription, error) {
	sub, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, sub.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to cancel this subscription")
	}

	if !sub.Status.CanTransition(models.SubscriptionCancelled) {
		return nil, utils.NewApiError(http.StatusBadRequest, "Subscription is already cancelled")
	}

	now := time.Now()
	sub.Status = models.SubscriptionCancelled
	sub.EndDate = &now
	if err := s.db.Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Pause(actor Actor, id string) (*models.Subscription, error) {
	sub, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, sub.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to pause this subscription")
	}

	if sub.Status != models.SubscriptionActive {
		return nil, utils.NewApiError(http.StatusBadRequest, "Can only pause active subscriptions")
	}

	sub.Status = models.SubscriptionPaused
	if err := s.db.Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Resume(actor Actor, id string) (*models.Subscription, error) {
	sub, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, sub.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to resume this subscription")
	}

	if sub.Status != models.SubscriptionPaused {
		return nil, utils.NewApiError(http.StatusBadRequest, "Can only resume paused subscriptions")
	}

	sub.Status = models.SubscriptionActive
	if err := s.db.Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) find(id string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Preload("MealPlan").First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewApiError(http.StatusNotFound, "Subscription not found")
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
