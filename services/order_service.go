package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"gorm.io/gorm"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderMealInput struct {
	MealID string
	Day    string
	Type   string
}

type OrderUpdate struct {
	Status    models.OrderStatus
	StartDate *time.Time
}

func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Preload("MealPlan").
		Preload("OrderMeals.Meal").
		Where("user_id = ?", userID).
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Preload("User").
		Preload("MealPlan").
		Preload("OrderMeals.Meal").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) Get(actor Actor, id string) (*models.Order, error) {
	order, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, order.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to view this order")
	}
	return order, nil
}

// Create writes the order and its meal rows in one transaction so a partial
// failure leaves nothing behind.
func (s *OrderService) Create(userID, planID string, startDate time.Time, meals []OrderMealInput) (*models.Order, error) {
	var count int64
	if err := s.db.Model(&models.MealPlan{}).Where("id = ?", planID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, utils.NewApiError(http.StatusNotFound, "Meal plan not found")
	}

	order := models.Order{
		UserID:     userID,
		MealPlanID: planID,
		Status:     models.OrderPending,
		StartDate:  startDate,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, m := range meals {
			om := models.OrderMeal{
				OrderID: order.ID,
				MealID:  m.MealID,
				Day:     m.Day,
				Type:    m.Type,
			}
			if err := tx.Create(&om).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.find(order.ID)
}

func (s *OrderService) Update(actor Actor, id string, in OrderUpdate) (*models.Order, error) {
	order, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, order.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to update this order")
	}

	if in.Status != "" && in.Status != order.Status {
		if !in.Status.Valid() || !order.Status.CanTransition(in.Status) {
			return nil, utils.NewApiError(http.StatusBadRequest, "Invalid status transition")
		}
		order.Status = in.Status
	}
	if in.StartDate != nil {
		order.StartDate = *in.StartDate
	}

	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Cancel(actor Actor, id string) (*models.Order, error) {
	order, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, order.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to cancel this order")
	}

	if !order.Status.CanTransition(models.OrderCancelled) {
		if order.Status == models.OrderDelivered {
			return nil, utils.NewApiError(http.StatusBadRequest, "Cannot cancel a delivered order")
		}
		return nil, utils.NewApiError(http.StatusBadRequest, "Order is already cancelled")
	}

	order.Status = models.OrderCancelled
	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) find(id string) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("MealPlan").
		Preload("OrderMeals.Meal").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewApiError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
