package httptransport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eats-backend/internal/auth"
)

func newIdentity() (*auth.Identity, *auth.TokenCodec) {
	codec := auth.NewTokenCodec("test-secret", 0)
	source := auth.PrincipalSourceFunc(func(_ context.Context, id int64) (auth.Principal, bool, error) {
		if id == 42 {
			return auth.Principal{ID: 42, Role: auth.RoleOwner}, true, nil
		}
		return auth.Principal{}, false, nil
	})
	return auth.NewIdentity(codec, source), codec
}

func principalSeenBy(t *testing.T, mw AuthMiddleware, header string) (auth.Principal, bool) {
	t.Helper()
	var (
		seen auth.Principal
		ok   bool
	)
	handler := mw.Wrap(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, ok = auth.PrincipalFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	if header != "" {
		req.Header.Set(TokenHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("middleware must never reject, got status %d", rec.Code)
	}
	return seen, ok
}

func TestAuthMiddleware_AttachesPrincipal(t *testing.T) {
	identity, codec := newIdentity()
	mw := AuthMiddleware{Identity: identity}

	p, ok := principalSeenBy(t, mw, codec.Issue(42))
	if !ok {
		t.Fatal("expected principal attached")
	}
	if p.ID != 42 || p.Role != auth.RoleOwner {
		t.Errorf("expected {42 Owner}, got %+v", p)
	}
}

func TestAuthMiddleware_AnonymousPassesThrough(t *testing.T) {
	identity, _ := newIdentity()
	mw := AuthMiddleware{Identity: identity}

	if _, ok := principalSeenBy(t, mw, ""); ok {
		t.Error("expected no principal without a credential")
	}
}

func TestAuthMiddleware_BadTokenPassesThrough(t *testing.T) {
	identity, _ := newIdentity()
	mw := AuthMiddleware{Identity: identity}

	if _, ok := principalSeenBy(t, mw, "garbage"); ok {
		t.Error("expected no principal for an unverifiable credential")
	}
}

func TestAuthMiddleware_UnknownUserPassesThrough(t *testing.T) {
	identity, codec := newIdentity()
	mw := AuthMiddleware{Identity: identity}

	if _, ok := principalSeenBy(t, mw, codec.Issue(404)); ok {
		t.Error("expected no principal for a deleted user")
	}
}
