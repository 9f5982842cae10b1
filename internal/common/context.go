package common

import "context"

type contextKey string

const contextKeyRequestID contextKey = "request_id"

// WithRequestID tags the context with a request ID so log lines across the
// pipeline can be correlated back to one RPC.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestIDFromContext returns the request ID, or "" when the context has
// none.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}
