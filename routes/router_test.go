package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/abdulazeespr/HungryGo/config"
	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	cfg := &config.Config{
		Env:                 "test",
		JWTSecret:           "test-secret",
		StripeSecretKey:     "sk_test_stub",
		StripeWebhookSecret: "whsec_test_secret",
	}
	return SetupRouter(cfg, db), db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := utils.HashPassword("Password1")
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Password: hashed,
		Name:     "Test User",
		Role:     role,
		Status:   models.UserActive,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateJWT(user.ID, "test-secret")
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
