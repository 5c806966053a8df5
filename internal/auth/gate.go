package auth

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
)

// Gate is the request-level authorization decision. It consults the
// policy store for the operation being executed and the principal the
// transport middleware attached to the request context, and either lets
// the resolver run or denies with a uniform ErrForbidden.
//
// It plugs into the gqlgen server as a handler extension intercepting
// root fields, so the decision sits in front of every resolver without
// the resolvers knowing about it.
type Gate struct {
	policies *PolicyStore
}

func NewGate(policies *PolicyStore) *Gate {
	return &Gate{policies: policies}
}

// Authorize decides whether the current request may invoke operation.
//
// No policy entry means the operation is public and anonymous calls are
// fine. Otherwise a principal must be present in ctx: RoleAny admits any
// authenticated principal, a concrete role set admits only matching
// roles. Deny is always the bare ErrForbidden.
func (g *Gate) Authorize(ctx context.Context, operation string) error {
	roles, ok := g.policies.PolicyFor(operation)
	if !ok {
		return nil
	}

	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return ErrForbidden
	}

	for _, role := range roles {
		if role == RoleAny || role == principal.Role {
			return nil
		}
	}
	return ErrForbidden
}

var _ interface {
	graphql.HandlerExtension
	graphql.FieldInterceptor
} = (*Gate)(nil)

func (g *Gate) ExtensionName() string { return "AccessGate" }

func (g *Gate) Validate(graphql.ExecutableSchema) error { return nil }

// InterceptField applies Authorize to root Query/Mutation/Subscription
// fields. Nested fields are reached only through an authorized root
// field, so they pass straight through.
func (g *Gate) InterceptField(ctx context.Context, next graphql.Resolver) (any, error) {
	fc := graphql.GetFieldContext(ctx)
	switch fc.Object {
	case "Query", "Mutation", "Subscription":
		if err := g.Authorize(ctx, fc.Field.Name); err != nil {
			return nil, err
		}
	}
	return next(ctx)
}
