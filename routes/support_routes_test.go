package routes

import (
	"net/http"
	"testing"

	"github.com/abdulazeespr/HungryGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportTicketFlowOverHTTP(t *testing.T) {
	r, db := setupTest(t)
	_, customerToken := createUser(t, db, "customer@example.com", models.RoleCustomer)
	agent, agentToken := createUser(t, db, "agent@example.com", models.RoleAgent)

	w := doJSON(t, r, http.MethodPost, "/api/support/tickets", map[string]any{
		"subject":  "Missing delivery",
		"category": "delivery",
		"message":  "My order never arrived.",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	ticketID, ok := body["id"].(string)
	require.True(t, ok)
	assert.Equal(t, string(models.TicketOpen), body["status"])

	// agent reply moves an open ticket to in_progress
	w = doJSON(t, r, http.MethodPost, "/api/support/tickets/"+ticketID+"/responses", map[string]any{
		"message": "Looking into it now.",
	}, agentToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var ticket models.SupportTicket
	require.NoError(t, db.Preload("Responses").First(&ticket, "id = ?", ticketID).Error)
	assert.Equal(t, models.TicketInProgress, ticket.Status)
	require.Len(t, ticket.Responses, 1)
	assert.Equal(t, agent.Name, ticket.Responses[0].From)

	w = doJSON(t, r, http.MethodPut, "/api/support/tickets/"+ticketID+"/status", map[string]any{
		"status": "resolved",
	}, agentToken)
	require.Equal(t, http.StatusOK, w.Code)

	// resolved cannot jump back to open
	w = doJSON(t, r, http.MethodPut, "/api/support/tickets/"+ticketID+"/status", map[string]any{
		"status": "open",
	}, agentToken)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSupportStatusChangeCustomerForbidden(t *testing.T) {
	r, db := setupTest(t)
	user, token := createUser(t, db, "customer@example.com", models.RoleCustomer)

	ticket := models.SupportTicket{UserID: user.ID, Subject: "Billing", Category: "billing", Message: "Charged twice", Status: models.TicketOpen}
	require.NoError(t, db.Create(&ticket).Error)

	w := doJSON(t, r, http.MethodPut, "/api/support/tickets/"+ticket.ID+"/status", map[string]any{
		"status": "closed",
	}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSupportTicketForeignAccessForbidden(t *testing.T) {
	r, db := setupTest(t)
	owner, _ := createUser(t, db, "owner@example.com", models.RoleCustomer)
	_, strangerToken := createUser(t, db, "stranger@example.com", models.RoleCustomer)

	ticket := models.SupportTicket{UserID: owner.ID, Subject: "Account", Category: "account", Message: "Help", Status: models.TicketOpen}
	require.NoError(t, db.Create(&ticket).Error)

	w := doJSON(t, r, http.MethodGet, "/api/support/tickets/"+ticket.ID, nil, strangerToken)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not authorized to view this ticket", decodeBody(t, w)["error"])
}
