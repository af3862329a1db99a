// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, id generation and other common
// operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDHeader carries the trace id between the daemon, its API clients and
// the sync server.
const TraceIDHeader = "X-Trace-ID"

// TraceIDCtxKey is the key used to store the trace id in the context.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// TraceIDFromContext returns the trace id stored by [WithTraceID] or an empty
// string.
//
// Example usage:
//
//	if id := utils.TraceIDFromContext(ctx); id != "" {
//	    req.SetHeader(utils.TraceIDHeader, id)
//	}
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
