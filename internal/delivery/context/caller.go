// Package context provides request-scoped context helpers for the delivery layer.
package context

import (
	"context"

	"marketplace/internal/domain/entity"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// KeyCallerID is the key for storing the authenticated caller's account ID.
const KeyCallerID ContextKey = "caller_id"

// WithCallerID returns a new context carrying the authenticated caller's account ID.
func WithCallerID(ctx context.Context, callerID entity.ID) context.Context {
	return context.WithValue(ctx, KeyCallerID, callerID)
}

// GetCallerID extracts the authenticated caller's account ID from the context.
// It returns the zero ID when the request carried no valid session token.
func GetCallerID(ctx context.Context) entity.ID {
	if id, ok := ctx.Value(KeyCallerID).(entity.ID); ok {
		return id
	}

	return entity.ID("")
}
