package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds operation-scoped logging context for catalog work
type LogContext struct {
	TraceID   string    // Correlation ID threaded through by the caller
	SpanID    string    // Span ID within the trace
	Operation string    // Catalog operation (lookup, attribute, subscribe, materialize)
	Object    string    // Canonical object name (domain:key=value,...)
	Attribute string    // Attribute name for attribute reads
	StartTime time.Time // For duration calculation
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for the given operation
func NewLogContext(operation string) *LogContext {
	return &LogContext{
		Operation: operation,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	return &LogContext{
		TraceID:   lc.TraceID,
		SpanID:    lc.SpanID,
		Operation: lc.Operation,
		Object:    lc.Object,
		Attribute: lc.Attribute,
		StartTime: lc.StartTime,
	}
}

// WithObject returns a copy with the object name set
func (lc *LogContext) WithObject(object string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Object = object
	}
	return clone
}

// WithAttribute returns a copy with the attribute name set
func (lc *LogContext) WithAttribute(attribute string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Attribute = attribute
	}
	return clone
}

// WithTrace returns a copy with trace info set
func (lc *LogContext) WithTrace(traceID, spanID string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.TraceID = traceID
		clone.SpanID = spanID
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
