package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func stubIntent(svc *PaymentService, captured **stripe.PaymentIntentParams) {
	svc.newIntent = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		if captured != nil {
			*captured = params
		}
		return &stripe.PaymentIntent{ID: "pi_test_123", ClientSecret: "pi_test_123_secret"}, nil
	}
}

func TestCreateIntent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, "sk_test_stub")

	user := makeUser(t, db, "payer@example.com", models.RoleCustomer)
	plan := makePlan(t, db)
	actor := Actor{ID: user.ID, Role: user.Role}

	order := models.Order{UserID: user.ID, MealPlanID: plan.ID, Status: models.OrderPending, StartDate: time.Now()}
	require.NoError(t, db.Create(&order).Error)

	t.Run("PersistsPendingPaymentWithIntentID", func(t *testing.T) {
		var captured *stripe.PaymentIntentParams
		stubIntent(svc, &captured)

		result, err := svc.CreateIntent(actor, 49.99, "usd", order.ID)
		require.NoError(t, err)
		assert.Equal(t, "pi_test_123_secret", result.ClientSecret)

		require.NotNil(t, captured)
		assert.Equal(t, int64(4999), *captured.Amount, "amount converted to cents")
		assert.Equal(t, user.ID, captured.Metadata["userId"])
		assert.Equal(t, order.ID, captured.Metadata["orderId"])

		var payment models.Payment
		require.NoError(t, db.First(&payment, "id = ?", result.PaymentID).Error)
		assert.Equal(t, models.PaymentPending, payment.Status)
		assert.Equal(t, "pi_test_123", payment.IntentID)
		require.NotNil(t, payment.OrderID)
		assert.Equal(t, order.ID, *payment.OrderID)
	})

	t.Run("StandalonePaymentLeavesOrderNull", func(t *testing.T) {
		var captured *stripe.PaymentIntentParams
		stubIntent(svc, &captured)

		result, err := svc.CreateIntent(actor, 15, "usd", "")
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.NotContains(t, captured.Metadata, "orderId")

		var payment models.Payment
		require.NoError(t, db.First(&payment, "id = ?", result.PaymentID).Error)
		assert.Nil(t, payment.OrderID)
	})

	t.Run("UnknownOrderRejected", func(t *testing.T) {
		stubIntent(svc, nil)
		_, err := svc.CreateIntent(actor, 10, "usd", "33333333-3333-4333-8333-333333333333")
		var apiErr *utils.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	})

	t.Run("ForeignOrderRejected", func(t *testing.T) {
		stubIntent(svc, nil)
		other := makeUser(t, db, "other-payer@example.com", models.RoleCustomer)
		_, err := svc.CreateIntent(Actor{ID: other.ID, Role: other.Role}, 10, "usd", order.ID)
		var apiErr *utils.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.Status)
	})
}

func TestApplyIntentSucceeded(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, "sk_test_stub")

	user := makeUser(t, db, "webhook@example.com", models.RoleCustomer)
	plan := makePlan(t, db)

	order := models.Order{UserID: user.ID, MealPlanID: plan.ID, Status: models.OrderPending, StartDate: time.Now()}
	require.NoError(t, db.Create(&order).Error)

	payment := models.Payment{
		UserID:   user.ID,
		OrderID:  &order.ID,
		IntentID: "pi_success_1",
		Amount:   49.99,
		Currency: "usd",
		Status:   models.PaymentPending,
	}
	require.NoError(t, db.Create(&payment).Error)

	t.Run("CompletesPaymentAndConfirmsOrder", func(t *testing.T) {
		err := svc.ApplyIntentSucceeded(&stripe.PaymentIntent{ID: "pi_success_1"})
		require.NoError(t, err)

		var p models.Payment
		require.NoError(t, db.First(&p, "id = ?", payment.ID).Error)
		assert.Equal(t, models.PaymentCompleted, p.Status)

		var o models.Order
		require.NoError(t, db.First(&o, "id = ?", order.ID).Error)
		assert.Equal(t, models.OrderConfirmed, o.Status)
	})

	t.Run("RedeliveryIsNoOp", func(t *testing.T) {
		require.NoError(t, svc.ApplyIntentSucceeded(&stripe.PaymentIntent{ID: "pi_success_1"}))

		var p models.Payment
		require.NoError(t, db.First(&p, "id = ?", payment.ID).Error)
		assert.Equal(t, models.PaymentCompleted, p.Status)
	})

	t.Run("UnknownIntentIsNoOp", func(t *testing.T) {
		require.NoError(t, svc.ApplyIntentSucceeded(&stripe.PaymentIntent{ID: "pi_never_seen"}))
	})

	t.Run("MetadataFallbackMatchesLegacyRow", func(t *testing.T) {
		legacy := models.Payment{
			UserID:   user.ID,
			OrderID:  &order.ID,
			Amount:   12.50,
			Currency: "usd",
			Status:   models.PaymentPending,
		}
		require.NoError(t, db.Create(&legacy).Error)

		err := svc.ApplyIntentSucceeded(&stripe.PaymentIntent{
			ID:       "pi_legacy_1",
			Metadata: map[string]string{"userId": user.ID, "orderId": order.ID},
		})
		require.NoError(t, err)

		var p models.Payment
		require.NoError(t, db.First(&p, "id = ?", legacy.ID).Error)
		assert.Equal(t, models.PaymentCompleted, p.Status)
	})
}

func TestApplyIntentFailed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, "sk_test_stub")

	user := makeUser(t, db, "failed@example.com", models.RoleCustomer)

	payment := models.Payment{
		UserID:   user.ID,
		IntentID: "pi_fail_1",
		Amount:   20,
		Currency: "usd",
		Status:   models.PaymentPending,
	}
	require.NoError(t, db.Create(&payment).Error)

	require.NoError(t, svc.ApplyIntentFailed(&stripe.PaymentIntent{ID: "pi_fail_1"}))

	var p models.Payment
	require.NoError(t, db.First(&p, "id = ?", payment.ID).Error)
	assert.Equal(t, models.PaymentFailed, p.Status)
}
