package services

import (
	"testing"

	"github.com/abdulazeespr/HungryGo/config"
	"github.com/abdulazeespr/HungryGo/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func makeUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "not-a-real-hash",
		Name:     "Test User",
		Role:     role,
		Status:   models.UserActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func makePlan(t *testing.T, db *gorm.DB) models.MealPlan {
	t.Helper()

	plan := models.MealPlan{Name: "Family Plan", Description: "Four meals a week", Price: 59.99}
	require.NoError(t, db.Create(&plan).Error)
	return plan
}
