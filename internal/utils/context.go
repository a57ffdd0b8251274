package utils

import (
	"context"

	"github.com/MKhiriev/go-rest-auth/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the context key under which the request identity is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext returns the identity attached by the identity middleware.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
