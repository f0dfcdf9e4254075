package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/abdulazeespr/HungryGo/services"
	"github.com/abdulazeespr/HungryGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

type PaymentController struct {
	svc           *services.PaymentService
	webhookSecret string
}

func NewPaymentController(svc *services.PaymentService, webhookSecret string) *PaymentController {
	return &PaymentController{svc: svc, webhookSecret: webhookSecret}
}

type CreateIntentInput struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"required,min=3"`
	OrderID  string  `json:"orderId" binding:"omitempty,uuid4"`
}

func (ctl *PaymentController) CreateIntent(c *gin.Context) {
	var input CreateIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := ctl.svc.CreateIntent(actorFrom(c), input.Amount, input.Currency, input.OrderID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (ctl *PaymentController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}

	payment, err := ctl.svc.Get(actorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (ctl *PaymentController) ListMine(c *gin.Context) {
	payments, err := ctl.svc.ListForUser(c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (ctl *PaymentController) ListAll(c *gin.Context) {
	payments, err := ctl.svc.ListAll()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Webhook receives processor callbacks. The body stays raw for signature
// verification; replay protection and delivery retries are the processor's
// side of the contract.
func (ctl *PaymentController) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		_ = c.Error(utils.NewApiError(http.StatusBadRequest, "Unable to read request body"))
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if sig == "" {
		_ = c.Error(utils.NewApiError(http.StatusBadRequest, "Missing Stripe signature"))
		return
	}

	event, err := webhook.ConstructEvent(payload, sig, ctl.webhookSecret)
	if err != nil {
		_ = c.Error(utils.NewApiError(http.StatusBadRequest, fmt.Sprintf("Webhook Error: %v", err)))
		return
	}

	switch string(event.Type) {
	case "payment_intent.succeeded":
		intent, err := parseIntent(event)
		if err == nil {
			err = ctl.svc.ApplyIntentSucceeded(intent)
		}
		if err != nil {
			_ = c.Error(err)
			return
		}
	case "payment_intent.payment_failed":
		intent, err := parseIntent(event)
		if err == nil {
			err = ctl.svc.ApplyIntentFailed(intent)
		}
		if err != nil {
			_ = c.Error(err)
			return
		}
	default:
		slog.Info("unhandled webhook event", "type", event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func parseIntent(event stripe.Event) (*stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, utils.NewApiError(http.StatusBadRequest, "Malformed event payload")
	}
	return &intent, nil
}
