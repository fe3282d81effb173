package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	usernameKey   ctxKey = "username"
	clientMetaKey ctxKey = "client_meta"
	requestIDKey  ctxKey = "request_id"
)

// ClientMeta describes where a request came from.
type ClientMeta struct {
	IP        string
	UserAgent string
}

// WithUsername stores the authenticated username in the context.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromCtx extracts the authenticated username from the context.
// Returns "" and false if the value is missing, blank, or of the wrong type.
func UsernameFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// WithClientMeta stores client metadata in the context.
func WithClientMeta(ctx context.Context, m ClientMeta) context.Context {
	return context.WithValue(ctx, clientMetaKey, m)
}

// ClientMetaFromCtx extracts client metadata from the context.
// Returns the zero value if absent.
func ClientMetaFromCtx(ctx context.Context) ClientMeta {
	m, _ := ctx.Value(clientMetaKey).(ClientMeta)
	return m
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
