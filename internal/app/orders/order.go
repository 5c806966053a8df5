// Package orders implements order placement, the role-gated order status
// state machine, and the real-time order event streams.
package orders

import (
	"time"

	"eats-backend/internal/auth"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCooking   Status = "Cooking"
	StatusCooked    Status = "Cooked"
	StatusPickedUp  Status = "PickedUp"
	StatusDelivered Status = "Delivered"
)

// Pub/sub topics for order lifecycle events. Payloads are the affected
// *Order; subscriber-side filters decide visibility.
const (
	TopicPendingOrders = "pendingOrders"
	TopicCookedOrders  = "cookedOrders"
	TopicOrderUpdates  = "orderUpdates"
)

type ItemOption struct {
	Name   string
	Choice string
}

type Item struct {
	DishID   int64
	DishName string
	Options  []ItemOption
}

type Order struct {
	ID                int64
	CustomerID        int64
	RestaurantID      int64
	RestaurantOwnerID int64
	DriverID          *int64
	Status            Status
	Total             float64
	Items             []Item
	CreatedAt         time.Time
}

// IsParticipant reports whether p is referenced by the order in the role
// it carries: a Client must be the customer, an Owner the restaurant's
// owner, a Delivery the assigned driver. An unassigned order has no
// driver, so a Delivery principal is never a participant before takeOrder.
func (o *Order) IsParticipant(p auth.Principal) bool {
	switch p.Role {
	case auth.RoleClient:
		return o.CustomerID == p.ID
	case auth.RoleOwner:
		return o.RestaurantOwnerID == p.ID
	case auth.RoleDelivery:
		return o.DriverID != nil && *o.DriverID == p.ID
	default:
		return false
	}
}
