package orders

import (
	"errors"

	"eats-backend/internal/auth"
)

var (
	// ErrPermissionDenied means the caller is not entitled to touch the
	// order at all: not a participant, a Client, or an unknown role.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrForbiddenTransition means the caller is a participant but the
	// requested status is outside their role's reachable set.
	ErrForbiddenTransition = errors.New("forbidden transition")
)

// ValidateTransition applies the role-gated status rules, in order:
//
//   - the caller must be a participant in the order;
//   - a Client may never change status;
//   - an Owner may only set Cooking or Cooked;
//   - a Delivery driver may only set PickedUp or Delivered.
//
// The sequence is deliberately not forced to move forward only: an Owner
// re-sending Cooking after Cooked is accepted, matching how status edits
// have always behaved.
func ValidateTransition(o *Order, requested Status, p auth.Principal) error {
	if !o.IsParticipant(p) {
		return ErrPermissionDenied
	}
	switch p.Role {
	case auth.RoleClient:
		return ErrPermissionDenied
	case auth.RoleOwner:
		if requested != StatusCooking && requested != StatusCooked {
			return ErrForbiddenTransition
		}
	case auth.RoleDelivery:
		if requested != StatusPickedUp && requested != StatusDelivered {
			return ErrForbiddenTransition
		}
	default:
		return ErrPermissionDenied
	}
	return nil
}

// TopicsFor lists the pub/sub topics an accepted transition to status
// must be published on. Every accepted transition announces an order
// update; reaching Cooked additionally announces the order to drivers.
func TopicsFor(status Status) []string {
	if status == StatusCooked {
		return []string{TopicCookedOrders, TopicOrderUpdates}
	}
	return []string{TopicOrderUpdates}
}
