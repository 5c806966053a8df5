package httptransport

import (
	"net/http"

	"eats-backend/internal/auth"
)

// TokenHeader carries the signed credential on HTTP requests. Websocket
// subscriptions send the same key in the connection init payload.
const TokenHeader = "x-jwt"

// AuthMiddleware resolves the caller's identity once per request and
// attaches the principal to the request context. It never rejects:
// anonymous and bad-token requests pass through without a principal, and
// the access gate decides per operation whether that is acceptable.
type AuthMiddleware struct {
	Identity *auth.Identity
}

func (m AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := m.Identity.Resolve(r.Context(), r.Header.Get(TokenHeader)); ok {
			r = r.WithContext(auth.WithPrincipal(r.Context(), p))
		}
		next.ServeHTTP(w, r)
	})
}
