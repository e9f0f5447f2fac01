// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them; services and handlers read them
// without importing net/http.
package requestcontext

import (
	"context"
	"time"
)

type (
	requestIDKey   struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	deviceLabelKey struct{}
	requestTimeKey struct{}
)

// RequestID returns the correlation id set by the RequestID middleware.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// ClientIP returns the resolved client address, or "" when unset.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(userAgentKey{}).(string); ok {
		return ua
	}
	return ""
}

// DeviceLabel is a coarse "Browser on OS" description of the caller.
func DeviceLabel(ctx context.Context) string {
	if label, ok := ctx.Value(deviceLabelKey{}).(string); ok {
		return label
	}
	return ""
}

// WithClientMetadata injects client IP, User-Agent and device label.
// Useful for service unit tests that don't run the full middleware chain.
func WithClientMetadata(ctx context.Context, clientIP, userAgent, deviceLabel string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, clientIP)
	ctx = context.WithValue(ctx, userAgentKey{}, userAgent)
	return context.WithValue(ctx, deviceLabelKey{}, deviceLabel)
}

// Now returns the request-scoped time, falling back to time.Now() when the
// context carries none.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
