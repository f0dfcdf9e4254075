package services

import (
	"net/http"
	"testing"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportTicketFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupportService(db)

	customer := makeUser(t, db, "customer@example.com", models.RoleCustomer)
	agent := makeUser(t, db, "agent@example.com", models.RoleAgent)
	stranger := makeUser(t, db, "stranger@example.com", models.RoleCustomer)

	customerActor := Actor{ID: customer.ID, Name: customer.Name, Role: customer.Role}
	agentActor := Actor{ID: agent.ID, Name: agent.Name, Role: agent.Role}

	ticket, err := svc.Create(customer.ID, "Missing item in my delivery", "delivery-problem", "The side salad was missing.")
	require.NoError(t, err)
	assert.Equal(t, models.TicketOpen, ticket.Status)

	t.Run("StrangerCannotView", func(t *testing.T) {
		_, err := svc.Get(Actor{ID: stranger.ID, Role: stranger.Role}, ticket.ID)
		var apiErr *utils.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.Status)
	})

	t.Run("AgentSeesAllTickets", func(t *testing.T) {
		other, err := svc.Create(stranger.ID, "App keeps crashing", "app-website", "Crashes on meal selection.")
		require.NoError(t, err)

		tickets, err := svc.ListFor(agentActor)
		require.NoError(t, err)
		assert.Len(t, tickets, 2)

		mine, err := svc.ListFor(customerActor)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.NotEqual(t, other.ID, mine[0].ID)
	})

	t.Run("AgentResponseMovesOpenToInProgress", func(t *testing.T) {
		updated, err := svc.Respond(agentActor, ticket.ID, "A credit has been issued for the missing item.")
		require.NoError(t, err)
		assert.Equal(t, models.TicketInProgress, updated.Status)
		require.Len(t, updated.Responses, 1)
		assert.Equal(t, agent.Name, updated.Responses[0].From)
	})

	t.Run("CustomerResponseKeepsStatus", func(t *testing.T) {
		updated, err := svc.Respond(customerActor, ticket.ID, "Thanks, that works for me.")
		require.NoError(t, err)
		assert.Equal(t, models.TicketInProgress, updated.Status)
		assert.Len(t, updated.Responses, 2)
	})

	t.Run("StatusTransitions", func(t *testing.T) {
		resolved, err := svc.UpdateStatus(ticket.ID, models.TicketResolved)
		require.NoError(t, err)
		assert.Equal(t, models.TicketResolved, resolved.Status)

		_, err = svc.UpdateStatus(ticket.ID, models.TicketStatus("garbage"))
		var apiErr *utils.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid status", apiErr.Message)

		closed, err := svc.UpdateStatus(ticket.ID, models.TicketClosed)
		require.NoError(t, err)
		assert.Equal(t, models.TicketClosed, closed.Status)

		_, err = svc.UpdateStatus(ticket.ID, models.TicketOpen)
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid status transition", apiErr.Message)
	})
}
