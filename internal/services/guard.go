package services

import "github.com/emberblog/backend/internal/models"

// Identity is the authenticated caller, resolved by the auth middleware
// before any service method runs.
type Identity struct {
	ID   int
	Role models.Role
}

func (i Identity) IsAdmin() bool { return i.Role == models.RoleAdmin }

// RequireOwnerOrAdmin allows the mutation when the caller owns the resource
// or is an admin. The resource label only feeds the error message.
func RequireOwnerOrAdmin(ownerID int, identity Identity, resource string) error {
	if identity.ID == ownerID || identity.IsAdmin() {
		return nil
	}
	return forbidden("you don't have permission to modify this " + resource)
}

// RequireRole fails unless the caller's role meets the required threshold.
func RequireRole(identity Identity, required models.Role) error {
	if identity.Role.AtLeast(required) {
		return nil
	}
	return forbidden("permission denied, required role: " + string(required) + " or higher")
}
