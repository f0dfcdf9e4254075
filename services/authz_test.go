package services

import (
	"testing"

	"github.com/abdulazeespr/HungryGo/models"

	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	owner := Actor{ID: "user-1", Role: models.RoleCustomer}

	assert.True(t, CanAccess(owner, "user-1"), "owner may access their own resource")
	assert.False(t, CanAccess(owner, "user-2"), "customer may not access another user's resource")

	admin := Actor{ID: "admin-1", Role: models.RoleAdmin}
	assert.True(t, CanAccess(admin, "user-2"), "admin may access any resource")

	agent := Actor{ID: "agent-1", Role: models.RoleAgent}
	assert.False(t, CanAccess(agent, "user-2"), "agent role grants no resource access")
}

func TestIsStaff(t *testing.T) {
	assert.True(t, IsStaff(Actor{Role: models.RoleAdmin}))
	assert.True(t, IsStaff(Actor{Role: models.RoleAgent}))
	assert.False(t, IsStaff(Actor{Role: models.RoleCustomer}))
}
