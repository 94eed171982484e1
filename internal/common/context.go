package common

import "context"

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyAuditID   contextKey = "audit_id"
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

// WithAuditID adds the current audit job ID to the context
func WithAuditID(ctx context.Context, auditID string) context.Context {
	return context.WithValue(ctx, ContextKeyAuditID, auditID)
}

// AuditIDFromContext extracts the audit job ID from context
func AuditIDFromContext(ctx context.Context) string {
	if auditID, ok := ctx.Value(ContextKeyAuditID).(string); ok {
		return auditID
	}
	return ""
}
