package orders

import (
	"errors"
	"testing"

	"eats-backend/internal/auth"
)

func participantOrder() *Order {
	driverID := int64(30)
	return &Order{
		ID:                1,
		CustomerID:        10,
		RestaurantOwnerID: 20,
		DriverID:          &driverID,
		Status:            StatusPending,
	}
}

// ---- Participant check --------------------------------------------------

func TestIsParticipant(t *testing.T) {
	order := participantOrder()

	cases := []struct {
		name string
		p    auth.Principal
		want bool
	}{
		{"customer", auth.Principal{ID: 10, Role: auth.RoleClient}, true},
		{"other client", auth.Principal{ID: 11, Role: auth.RoleClient}, false},
		{"owner", auth.Principal{ID: 20, Role: auth.RoleOwner}, true},
		{"other owner", auth.Principal{ID: 21, Role: auth.RoleOwner}, false},
		{"assigned driver", auth.Principal{ID: 30, Role: auth.RoleDelivery}, true},
		{"other driver", auth.Principal{ID: 31, Role: auth.RoleDelivery}, false},
		{"unknown role", auth.Principal{ID: 10, Role: "Admin"}, false},
	}
	for _, tc := range cases {
		if got := order.IsParticipant(tc.p); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsParticipant_UnassignedOrder(t *testing.T) {
	order := participantOrder()
	order.DriverID = nil

	if order.IsParticipant(auth.Principal{ID: 30, Role: auth.RoleDelivery}) {
		t.Error("no driver can be a participant of an unassigned order")
	}
}

// ---- Transition matrix --------------------------------------------------

func TestValidateTransition_NonParticipant(t *testing.T) {
	order := participantOrder()
	outsider := auth.Principal{ID: 99, Role: auth.RoleOwner}

	if err := ValidateTransition(order, StatusCooking, outsider); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got: %v", err)
	}
}

func TestValidateTransition_ClientNeverMutates(t *testing.T) {
	order := participantOrder()
	customer := auth.Principal{ID: 10, Role: auth.RoleClient}

	for _, status := range []Status{StatusPending, StatusCooking, StatusCooked, StatusPickedUp, StatusDelivered} {
		if err := ValidateTransition(order, status, customer); !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("client to %s: expected ErrPermissionDenied, got: %v", status, err)
		}
	}
}

func TestValidateTransition_OwnerStatuses(t *testing.T) {
	order := participantOrder()
	owner := auth.Principal{ID: 20, Role: auth.RoleOwner}

	allowed := map[Status]bool{StatusCooking: true, StatusCooked: true}
	for _, status := range []Status{StatusPending, StatusCooking, StatusCooked, StatusPickedUp, StatusDelivered} {
		err := ValidateTransition(order, status, owner)
		if allowed[status] && err != nil {
			t.Errorf("owner to %s: expected allow, got: %v", status, err)
		}
		if !allowed[status] && !errors.Is(err, ErrForbiddenTransition) {
			t.Errorf("owner to %s: expected ErrForbiddenTransition, got: %v", status, err)
		}
	}
}

func TestValidateTransition_DeliveryStatuses(t *testing.T) {
	order := participantOrder()
	driver := auth.Principal{ID: 30, Role: auth.RoleDelivery}

	allowed := map[Status]bool{StatusPickedUp: true, StatusDelivered: true}
	for _, status := range []Status{StatusPending, StatusCooking, StatusCooked, StatusPickedUp, StatusDelivered} {
		err := ValidateTransition(order, status, driver)
		if allowed[status] && err != nil {
			t.Errorf("driver to %s: expected allow, got: %v", status, err)
		}
		if !allowed[status] && !errors.Is(err, ErrForbiddenTransition) {
			t.Errorf("driver to %s: expected ErrForbiddenTransition, got: %v", status, err)
		}
	}
}

// Status edits are not forced to move forward; an owner can re-send
// Cooking after Cooked.
func TestValidateTransition_NoForwardOnlyOrdering(t *testing.T) {
	order := participantOrder()
	order.Status = StatusCooked
	owner := auth.Principal{ID: 20, Role: auth.RoleOwner}

	if err := ValidateTransition(order, StatusCooking, owner); err != nil {
		t.Errorf("expected backward edit accepted, got: %v", err)
	}
}

// ---- Event topics -------------------------------------------------------

func TestTopicsFor(t *testing.T) {
	for _, status := range []Status{StatusCooking, StatusPickedUp, StatusDelivered} {
		topics := TopicsFor(status)
		if len(topics) != 1 || topics[0] != TopicOrderUpdates {
			t.Errorf("%s: expected only orderUpdates, got %v", status, topics)
		}
	}

	cooked := TopicsFor(StatusCooked)
	if len(cooked) != 2 || cooked[0] != TopicCookedOrders || cooked[1] != TopicOrderUpdates {
		t.Errorf("Cooked: expected cookedOrders+orderUpdates, got %v", cooked)
	}
}
