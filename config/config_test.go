package config

import (
	"testing"

	"github.com/abdulazeespr/HungryGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrateBuildsFullSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	// the ticket has-many keys off TicketID, not the default column name
	ticket := models.SupportTicket{
		UserID:   "44444444-4444-4444-8444-444444444444",
		Subject:  "Billing",
		Category: "billing",
		Message:  "Charged twice",
		Status:   models.TicketOpen,
	}
	require.NoError(t, db.Create(&ticket).Error)

	response := models.TicketResponse{
		TicketID: ticket.ID,
		UserID:   ticket.UserID,
		From:     "Support Agent",
		Message:  "Refund issued",
	}
	require.NoError(t, db.Create(&response).Error)

	var got models.SupportTicket
	require.NoError(t, db.Preload("Responses").First(&got, "id = ?", ticket.ID).Error)
	require.Len(t, got.Responses, 1)
	assert.Equal(t, response.ID, got.Responses[0].ID)
}
