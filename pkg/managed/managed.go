// Package managed defines the contracts shared by every object that can be
// placed in an introspection catalog: naming, attribute access, and event
// emission.
//
// The package is a leaf with no internal dependencies beyond pkg/lazy. It is
// imported both by the registry that stores managed objects and by the
// packages that implement them, so it must never grow registry- or
// transport-specific behavior.
//
// An object opts into capabilities by implementing the corresponding
// interface:
//
//   - Object is the minimum contract: a stable catalog name.
//   - Queryable additionally exposes named attributes for inspection.
//   - Emitter additionally publishes events to subscribers.
//
// Capability detection happens once, at registration time, via ShapeOf.
package managed

import (
	"context"
	"errors"
	"time"
)

// ErrNoSuchAttribute is returned by Queryable implementations when asked for
// an attribute they do not expose. Callers match it with errors.Is.
var ErrNoSuchAttribute = errors.New("no such attribute")

// Object is the minimum contract for anything held in a catalog.
//
// ObjectName must be stable for the lifetime of the object and unique within
// a materialized catalog. Implementations must be pointer-backed (a pointer,
// or an interface holding one) so the catalog can track them by identity.
type Object interface {
	ObjectName() Name
}

// Queryable is an Object that exposes named attributes.
//
// Implementations must be safe for concurrent use: Attribute is called from
// inspection paths without external locking.
type Queryable interface {
	Object

	// AttributeNames returns the attributes this object exposes.
	// The returned slice is a copy and safe to modify.
	AttributeNames() []string

	// Attribute returns the current value of the named attribute.
	// Returns an error wrapping ErrNoSuchAttribute for unknown names.
	Attribute(name string) (any, error)
}

// Emitter is an Object that publishes events.
//
// Subscribe returns a channel that receives events until ctx is cancelled,
// at which point the channel is closed. Delivery is best-effort: an emitter
// never blocks on a slow subscriber and may drop events for it instead.
type Emitter interface {
	Object

	Subscribe(ctx context.Context) <-chan Event
}

// Event is a single occurrence published by an Emitter.
type Event struct {
	// Source is the name of the emitting object.
	Source Name

	// Type is a short event class identifier, such as "memory.usage".
	Type string

	// Message is a human-readable description. May be empty.
	Message string

	// Sequence increases by one for every event the source emits,
	// starting at 1. Gaps on a given subscriber channel mean events
	// were dropped for that subscriber, not lost by the source.
	Sequence uint64

	// Timestamp is when the event was emitted.
	Timestamp time.Time

	// Payload carries event-specific data. May be nil.
	Payload any
}
