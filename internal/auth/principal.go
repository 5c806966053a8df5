package auth

import "errors"

// Role is the marketplace role a user account carries.
type Role string

const (
	RoleClient   Role = "Client"
	RoleOwner    Role = "Owner"
	RoleDelivery Role = "Delivery"

	// RoleAny matches any authenticated principal regardless of role.
	// It is only meaningful inside a policy, never on a user account.
	RoleAny Role = "Any"
)

// Principal is the authenticated caller for the current request.
// It lives in request context and is never persisted.
type Principal struct {
	ID   int64
	Role Role
}

// ErrForbidden is the uniform denial returned by the access gate. It
// deliberately carries no reason; callers should not learn why they
// were denied.
var ErrForbidden = errors.New("forbidden")
