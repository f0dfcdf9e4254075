package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"gorm.io/gorm"
)

type PaymentService struct {
	db *gorm.DB

	// newIntent is the processor call; tests swap it for a stub.
	newIntent func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func NewPaymentService(db *gorm.DB, secretKey string) *PaymentService {
	stripe.Key = secretKey
	return &PaymentService{db: db, newIntent: paymentintent.New}
}

type IntentResult struct {
	ClientSecret string `json:"clientSecret"`
	PaymentID    string `json:"paymentId"`
}

// CreateIntent asks the processor for a payment intent and records a pending
// payment row keyed by the processor's intent ID. The local row is written
// only after the processor call succeeds; a processor-side intent with no
// local row simply expires unused.
func (s *PaymentService) CreateIntent(actor Actor, amount float64, currency, orderID string) (*IntentResult, error) {
	if orderID != "" {
		var order models.Order
		err := s.db.First(&order, "id = ?", orderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewApiError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return nil, err
		}
		if !CanAccess(actor, order.UserID) {
			return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to access this order")
		}
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("userId", actor.ID)
	if orderID != "" {
		params.AddMetadata("orderId", orderID)
	}

	intent, err := s.newIntent(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	payment := models.Payment{
		UserID:   actor.ID,
		IntentID: intent.ID,
		Amount:   amount,
		Currency: currency,
		Status:   models.PaymentPending,
	}
	if orderID != "" {
		payment.OrderID = &orderID
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &IntentResult{ClientSecret: intent.ClientSecret, PaymentID: payment.ID}, nil
}

func (s *PaymentService) Get(actor Actor, id string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewApiError(http.StatusNotFound, "Payment not found")
	}
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, payment.UserID) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to view this payment")
	}
	return &payment, nil
}

func (s *PaymentService) ListForUser(userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (s *PaymentService) ListAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Preload("User").Order("created_at DESC").Find(&payments).Error
	return payments, err
}

// ApplyIntentSucceeded marks the matching payment completed and confirms its
// order. Unknown intents and repeat deliveries are no-ops.
func (s *PaymentService) ApplyIntentSucceeded(intent *stripe.PaymentIntent) error {
	payment, err := s.findForIntent(intent)
	if err != nil || payment == nil {
		return err
	}

	if !payment.Status.CanTransition(models.PaymentCompleted) {
		slog.Info("payment already settled, ignoring webhook", "payment", payment.ID, "status", payment.Status)
		return nil
	}

	payment.Status = models.PaymentCompleted
	if err := s.db.Save(payment).Error; err != nil {
		return err
	}

	if payment.OrderID == nil {
		return nil
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", *payment.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if order.Status.CanTransition(models.OrderConfirmed) {
		order.Status = models.OrderConfirmed
		return s.db.Save(&order).Error
	}
	return nil
}

func (s *PaymentService) ApplyIntentFailed(intent *stripe.PaymentIntent) error {
	payment, err := s.findForIntent(intent)
	if err != nil || payment == nil {
		return err
	}

	if !payment.Status.CanTransition(models.PaymentFailed) {
		return nil
	}

	payment.Status = models.PaymentFailed
	return s.db.Save(payment).Error
}

// findForIntent resolves by the stored processor intent ID, falling back to
// the (userId, orderId) metadata pair for rows that predate the intent_id
// column. A nil result with nil error means no matching payment.
func (s *PaymentService) findForIntent(intent *stripe.PaymentIntent) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.First(&payment, "intent_id = ?", intent.ID).Error
	if err == nil {
		return &payment, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userID := intent.Metadata["userId"]
	orderID := intent.Metadata["orderId"]
	if userID == "" || orderID == "" {
		return nil, nil
	}

	err = s.db.
		Where("user_id = ? AND order_id = ? AND (intent_id = '' OR intent_id IS NULL)", userID, orderID).
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
