package auth

import (
	"context"
	"errors"
	"testing"
)

func staticSource(known map[int64]Principal) PrincipalSource {
	return PrincipalSourceFunc(func(_ context.Context, id int64) (Principal, bool, error) {
		p, ok := known[id]
		return p, ok, nil
	})
}

func TestIdentity_Resolve(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)
	identity := NewIdentity(codec, staticSource(map[int64]Principal{
		42: {ID: 42, Role: RoleOwner},
	}))

	p, ok := identity.Resolve(context.Background(), codec.Issue(42))
	if !ok {
		t.Fatal("expected principal for valid credential")
	}
	if p.ID != 42 || p.Role != RoleOwner {
		t.Errorf("expected principal {42 Owner}, got %+v", p)
	}
}

func TestIdentity_Resolve_Anonymous(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)
	identity := NewIdentity(codec, staticSource(nil))

	if _, ok := identity.Resolve(context.Background(), ""); ok {
		t.Error("empty credential must resolve to no principal")
	}
}

func TestIdentity_Resolve_BadToken(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)
	identity := NewIdentity(codec, staticSource(map[int64]Principal{
		42: {ID: 42, Role: RoleClient},
	}))

	if _, ok := identity.Resolve(context.Background(), "not-a-credential"); ok {
		t.Error("unverifiable credential must resolve to no principal")
	}
}

func TestIdentity_Resolve_UnknownUser(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)
	identity := NewIdentity(codec, staticSource(nil))

	// Valid signature, but the account is gone.
	if _, ok := identity.Resolve(context.Background(), codec.Issue(42)); ok {
		t.Error("credential for deleted user must resolve to no principal")
	}
}

func TestIdentity_Resolve_SourceError(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)
	identity := NewIdentity(codec, PrincipalSourceFunc(func(context.Context, int64) (Principal, bool, error) {
		return Principal{}, false, errors.New("store down")
	}))

	if _, ok := identity.Resolve(context.Background(), codec.Issue(42)); ok {
		t.Error("lookup failure must resolve to no principal")
	}
}

func TestPrincipalContext_RoundTrip(t *testing.T) {
	want := Principal{ID: 7, Role: RoleDelivery}
	ctx := WithPrincipal(context.Background(), want)

	got, ok := PrincipalFromContext(ctx)
	if !ok {
		t.Fatal("expected principal in context")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if _, ok := PrincipalFromContext(context.Background()); ok {
		t.Error("bare context must carry no principal")
	}
}
