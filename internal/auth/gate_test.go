package auth

import (
	"context"
	"errors"
	"testing"
)

func gateWith(register func(*PolicyStore)) *Gate {
	policies := NewPolicyStore()
	register(policies)
	return NewGate(policies)
}

func ctxWith(role Role) context.Context {
	return WithPrincipal(context.Background(), Principal{ID: 1, Role: role})
}

// ---- Public operations --------------------------------------------------

func TestGate_NoPolicyIsPublic(t *testing.T) {
	gate := gateWith(func(*PolicyStore) {})

	if err := gate.Authorize(context.Background(), "restaurants"); err != nil {
		t.Errorf("anonymous call to unregistered operation: expected allow, got: %v", err)
	}
	if err := gate.Authorize(ctxWith(RoleClient), "restaurants"); err != nil {
		t.Errorf("authenticated call to unregistered operation: expected allow, got: %v", err)
	}
}

// ---- RoleAny ------------------------------------------------------------

func TestGate_AnyRequiresPrincipal(t *testing.T) {
	gate := gateWith(func(s *PolicyStore) { s.Register("me", RoleAny) })

	if err := gate.Authorize(context.Background(), "me"); !errors.Is(err, ErrForbidden) {
		t.Errorf("anonymous call to Any operation: expected ErrForbidden, got: %v", err)
	}
	for _, role := range []Role{RoleClient, RoleOwner, RoleDelivery} {
		if err := gate.Authorize(ctxWith(role), "me"); err != nil {
			t.Errorf("%s call to Any operation: expected allow, got: %v", role, err)
		}
	}
}

// ---- Concrete role sets -------------------------------------------------

func TestGate_RoleMatrix(t *testing.T) {
	gate := gateWith(func(s *PolicyStore) {
		s.Register("createOrder", RoleClient)
		s.Register("createDish", RoleOwner)
		s.Register("takeOrder", RoleDelivery)
	})

	cases := []struct {
		operation string
		role      Role
		allowed   bool
	}{
		{"createOrder", RoleClient, true},
		{"createOrder", RoleOwner, false},
		{"createOrder", RoleDelivery, false},
		{"createDish", RoleClient, false},
		{"createDish", RoleOwner, true},
		{"createDish", RoleDelivery, false},
		{"takeOrder", RoleClient, false},
		{"takeOrder", RoleOwner, false},
		{"takeOrder", RoleDelivery, true},
	}
	for _, tc := range cases {
		err := gate.Authorize(ctxWith(tc.role), tc.operation)
		if tc.allowed && err != nil {
			t.Errorf("%s as %s: expected allow, got: %v", tc.operation, tc.role, err)
		}
		if !tc.allowed && !errors.Is(err, ErrForbidden) {
			t.Errorf("%s as %s: expected ErrForbidden, got: %v", tc.operation, tc.role, err)
		}
	}
}

func TestGate_MultiRolePolicy(t *testing.T) {
	gate := gateWith(func(s *PolicyStore) { s.Register("dashboard", RoleOwner, RoleDelivery) })

	if err := gate.Authorize(ctxWith(RoleOwner), "dashboard"); err != nil {
		t.Errorf("Owner: expected allow, got: %v", err)
	}
	if err := gate.Authorize(ctxWith(RoleDelivery), "dashboard"); err != nil {
		t.Errorf("Delivery: expected allow, got: %v", err)
	}
	if err := gate.Authorize(ctxWith(RoleClient), "dashboard"); !errors.Is(err, ErrForbidden) {
		t.Errorf("Client: expected ErrForbidden, got: %v", err)
	}
}

// Deny is always the bare sentinel so a caller probing a protected
// operation cannot tell a role mismatch from a missing login.
func TestGate_UniformDenial(t *testing.T) {
	gate := gateWith(func(s *PolicyStore) { s.Register("createDish", RoleOwner) })

	anonymous := gate.Authorize(context.Background(), "createDish")
	wrongRole := gate.Authorize(ctxWith(RoleClient), "createDish")

	if anonymous != ErrForbidden {
		t.Errorf("anonymous denial: expected bare ErrForbidden, got: %v", anonymous)
	}
	if wrongRole != ErrForbidden {
		t.Errorf("wrong-role denial: expected bare ErrForbidden, got: %v", wrongRole)
	}
}

func TestGate_RegisterReplaces(t *testing.T) {
	policies := NewPolicyStore()
	policies.Register("editOrder", RoleOwner)
	policies.Register("editOrder", RoleAny)
	gate := NewGate(policies)

	if err := gate.Authorize(ctxWith(RoleClient), "editOrder"); err != nil {
		t.Errorf("expected re-registered policy to apply, got: %v", err)
	}
}
