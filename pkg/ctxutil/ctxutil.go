package ctxutil

import (
	"context"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	scopeKey     ctxKey = "scope"
	requestIDKey ctxKey = "request_id"
)

// ScopeService marks callers allowed to push notifications to arbitrary receivers.
const ScopeService = "service"

// WithIdentity stores the acting identity in the context.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the acting identity from the context.
// Returns "" and false if the value is missing, empty, or of the wrong type.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithScope stores the token scope in the context.
func WithScope(ctx context.Context, scope string) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

// ScopeFromCtx returns the token scope, or "" if absent.
func ScopeFromCtx(ctx context.Context) string {
	s, _ := ctx.Value(scopeKey).(string)
	return s
}

// IsServiceCtx reports whether the caller authenticated with a service token.
func IsServiceCtx(ctx context.Context) bool {
	return ScopeFromCtx(ctx) == ScopeService
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
