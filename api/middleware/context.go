package middleware

import (
	"context"

	"github.com/angelmondragon/healthtrack-backend/internal/auth"
)

type contextKey string

const ctxIdentity contextKey = "identity"

// WithIdentity injects the verified caller into the context.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxIdentity, identity)
}

// IdentityFromContext returns the caller placed by Auth.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	if ctx == nil {
		return auth.Identity{}, false
	}
	identity, ok := ctx.Value(ctxIdentity).(auth.Identity)
	return identity, ok
}

func UserIDFromContext(ctx context.Context) uint {
	identity, _ := IdentityFromContext(ctx)
	return identity.UserID
}
