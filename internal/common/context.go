package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyCompany   contextKey = "company"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithCompany adds a company name to the context
func WithCompany(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ContextKeyCompany, name)
}

// CompanyFromContext extracts the company name from context
func CompanyFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(ContextKeyCompany).(string); ok {
		return name
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
