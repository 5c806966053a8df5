package graph

import "eats-backend/internal/auth"

// Policies declares the allowed roles for every protected root operation
// in the schema. Operations not listed here are public. The table is the
// single source of truth the access gate consults; it lives next to the
// schema so the two are reviewed together.
func Policies() *auth.PolicyStore {
	ps := auth.NewPolicyStore()

	// users
	ps.Register("me", auth.RoleAny)
	ps.Register("editProfile", auth.RoleAny)

	// restaurants and dishes
	ps.Register("createRestaurant", auth.RoleOwner)
	ps.Register("editRestaurant", auth.RoleOwner)
	ps.Register("deleteRestaurant", auth.RoleOwner)
	ps.Register("myRestaurants", auth.RoleOwner)
	ps.Register("myRestaurant", auth.RoleOwner)
	ps.Register("createDish", auth.RoleOwner)
	ps.Register("editDish", auth.RoleOwner)
	ps.Register("deleteDish", auth.RoleOwner)

	// orders
	ps.Register("createOrder", auth.RoleClient)
	ps.Register("getOrders", auth.RoleAny)
	ps.Register("getOrder", auth.RoleAny)
	ps.Register("editOrder", auth.RoleAny)
	ps.Register("takeOrder", auth.RoleDelivery)

	// payments
	ps.Register("createPayment", auth.RoleOwner)
	ps.Register("getPayments", auth.RoleOwner)

	// subscriptions
	ps.Register("pendingOrders", auth.RoleOwner)
	ps.Register("cookedOrders", auth.RoleDelivery)
	ps.Register("orderUpdates", auth.RoleAny)

	return ps
}
