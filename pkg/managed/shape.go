package managed

import "fmt"

// Shape classifies how a managed object is exposed through a catalog server.
// The set of shapes is closed: every object is exactly one of plain,
// queryable, or emitter, decided once by ShapeOf rather than re-probed with
// type assertions on every access.
type Shape int

const (
	// ShapePlain marks an object that only carries a name. Its attributes
	// are derived from the interface it was registered under.
	ShapePlain Shape = iota

	// ShapeQueryable marks an object that exposes attributes itself.
	ShapeQueryable

	// ShapeEmitter marks an object that publishes events. An emitter that
	// is also queryable keeps its attributes; emission takes precedence
	// only for classification.
	ShapeEmitter
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapePlain:
		return "plain"
	case ShapeQueryable:
		return "queryable"
	case ShapeEmitter:
		return "emitter"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// ShapeOf classifies an object by its capabilities. Emitter wins over
// Queryable when both are implemented.
func ShapeOf(obj Object) Shape {
	switch obj.(type) {
	case Emitter:
		return ShapeEmitter
	case Queryable:
		return ShapeQueryable
	default:
		return ShapePlain
	}
}
