package logger

import "log/slog"

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so catalog
// output stays queryable after aggregation.
const (
	// ========================================================================
	// Correlation
	// ========================================================================
	KeyTraceID = "trace_id" // Correlation ID for multi-step operations
	KeySpanID  = "span_id"  // Span ID within a trace

	// ========================================================================
	// Catalog Objects
	// ========================================================================
	KeyObject    = "object"    // Canonical object name: domain:key=value,...
	KeyDomain    = "domain"    // Object domain (go.runtime, app.pools, etc.)
	KeyTag       = "tag"       // Tag name an object is registered under
	KeyAttribute = "attribute" // Attribute name for attribute reads
	KeyShape     = "shape"     // Object shape: plain, queryable, emitter

	// ========================================================================
	// Registry Assembly
	// ========================================================================
	KeyTags    = "tags"    // Number of bound tags
	KeyObjects = "objects" // Number of registered objects
	KeySealed  = "sealed"  // Registry sealed indicator

	// ========================================================================
	// Events
	// ========================================================================
	KeyEventType   = "event_type"  // Emitted event type string
	KeyBufferSize  = "buffer_size" // Subscriber channel buffer size
	KeySubscribers = "subscribers" // Active subscriber count

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyOperation  = "operation"   // Catalog operation name
	KeyCount      = "count"       // Generic count of items handled
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message

	// ========================================================================
	// Export
	// ========================================================================
	KeyNamespace = "namespace" // Metric namespace prefix
	KeyMetric    = "metric"    // Exported metric name
)

// ============================================================================
// Field constructors for type safety
// ============================================================================

// TraceID returns a slog.Attr for a correlation ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for a span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// Object returns a slog.Attr for a canonical object name
func Object(name string) slog.Attr {
	return slog.String(KeyObject, name)
}

// Domain returns a slog.Attr for an object domain
func Domain(domain string) slog.Attr {
	return slog.String(KeyDomain, domain)
}

// Tag returns a slog.Attr for a tag name
func Tag(name string) slog.Attr {
	return slog.String(KeyTag, name)
}

// Attribute returns a slog.Attr for an attribute name
func Attribute(name string) slog.Attr {
	return slog.String(KeyAttribute, name)
}

// Shape returns a slog.Attr for a query shape
func Shape(shape string) slog.Attr {
	return slog.String(KeyShape, shape)
}

// Tags returns a slog.Attr for a bound tag count
func Tags(n int) slog.Attr {
	return slog.Int(KeyTags, n)
}

// Objects returns a slog.Attr for a registered object count
func Objects(n int) slog.Attr {
	return slog.Int(KeyObjects, n)
}

// Sealed returns a slog.Attr for the registry sealed indicator
func Sealed(sealed bool) slog.Attr {
	return slog.Bool(KeySealed, sealed)
}

// EventType returns a slog.Attr for an emitted event type
func EventType(t string) slog.Attr {
	return slog.String(KeyEventType, t)
}

// BufferSize returns a slog.Attr for a subscriber buffer size
func BufferSize(n int) slog.Attr {
	return slog.Int(KeyBufferSize, n)
}

// Subscribers returns a slog.Attr for an active subscriber count
func Subscribers(n int) slog.Attr {
	return slog.Int(KeySubscribers, n)
}

// Operation returns a slog.Attr for a catalog operation name
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Count returns a slog.Attr for a generic item count
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Namespace returns a slog.Attr for a metric namespace prefix
func Namespace(ns string) slog.Attr {
	return slog.String(KeyNamespace, ns)
}

// Metric returns a slog.Attr for an exported metric name
func Metric(name string) slog.Attr {
	return slog.String(KeyMetric, name)
}
