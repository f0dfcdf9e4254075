package services

import "github.com/abdulazeespr/HungryGo/models"

// Actor is the authenticated caller as seen by the service layer.
type Actor struct {
	ID   string
	Name string
	Role string
}

// CanAccess is the one owner-or-admin policy shared by every resource
// handler: the caller may read or mutate a resource iff they own it or
// hold the admin role.
func CanAccess(actor Actor, ownerID string) bool {
	return actor.Role == models.RoleAdmin || actor.ID == ownerID
}

// IsStaff reports whether the caller handles support work.
func IsStaff(actor Actor) bool {
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleAgent
}
