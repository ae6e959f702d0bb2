// Package context carries request-scoped values shared by the http layer and the logger.
package context

import (
	"context"

	"github.com/google/uuid"
)

// TraceContext identifies one request across log lines.
type TraceContext struct {
	TraceID   string
	RequestID string
	Path      string
}

type traceContextKey struct{}

func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns the TraceContext stored in ctx, or nil.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// NewTraceContext generates fresh ids. Empty arguments are replaced by new UUIDs.
func NewTraceContext(traceID, requestID string) *TraceContext {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	if traceID == "" {
		traceID = requestID
	}
	return &TraceContext{TraceID: traceID, RequestID: requestID}
}
