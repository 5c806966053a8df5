package auth

import "context"

// PrincipalSource looks up a user account by id and reports it as a
// Principal. The second return is false when no such user exists.
type PrincipalSource interface {
	FindPrincipal(ctx context.Context, id int64) (Principal, bool, error)
}

// PrincipalSourceFunc adapts a function to the PrincipalSource interface.
type PrincipalSourceFunc func(ctx context.Context, id int64) (Principal, bool, error)

func (f PrincipalSourceFunc) FindPrincipal(ctx context.Context, id int64) (Principal, bool, error) {
	return f(ctx, id)
}

// Identity resolves a raw credential into the authenticated Principal.
// Resolution happens once per request (in the transport middleware or the
// websocket init hook); the result is attached to request context and
// reused from there.
type Identity struct {
	codec *TokenCodec
	users PrincipalSource
}

func NewIdentity(codec *TokenCodec, users PrincipalSource) *Identity {
	return &Identity{codec: codec, users: users}
}

// Resolve returns the principal for rawToken, or false when the request is
// anonymous. A missing token, an unverifiable token, and a token for a
// user that no longer exists are all equivalent: no principal, no error.
// Anonymous access is legal for public operations, so none of these are
// denial reasons by themselves.
func (i *Identity) Resolve(ctx context.Context, rawToken string) (Principal, bool) {
	if rawToken == "" {
		return Principal{}, false
	}
	id, err := i.codec.Verify(rawToken)
	if err != nil {
		return Principal{}, false
	}
	p, ok, err := i.users.FindPrincipal(ctx, id)
	if err != nil || !ok {
		return Principal{}, false
	}
	return p, true
}
