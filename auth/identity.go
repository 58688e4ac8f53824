package auth

import (
	"context"

	"github.com/upb/course-registry/models"
)

// Identity is the resolved (subject, role) pair for the current request.
// It is threaded through the request context only; there is no global
// security context shared between requests.
type Identity struct {
	Subject string
	Role    models.Role
}

// identityContextKey is the context key type for identities, unexported
// to avoid collisions with other packages.
type identityContextKey struct{}

// WithIdentity returns a copy of ctx carrying the given identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext retrieves the identity attached to ctx, or nil when
// the request is unauthenticated. Callers must treat nil as "no identity",
// never as an anonymous low-privilege identity.
func IdentityFromContext(ctx context.Context) *Identity {
	if val := ctx.Value(identityContextKey{}); val != nil {
		if identity, ok := val.(*Identity); ok {
			return identity
		}
	}
	return nil
}
