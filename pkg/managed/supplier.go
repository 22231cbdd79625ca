package managed

import (
	"fmt"

	"github.com/aetheriaxai/graal/pkg/lazy"
)

// Supplier defers construction of a managed object until the catalog first
// needs it. A Supplier is itself an Object, so it can be registered wherever
// a concrete object could; the catalog resolves it during materialization.
//
// The produce function runs at most once for the process lifetime, and every
// outcome is final: a constructed object is handed back on each Resolve, an
// error is reported again on each Resolve, and (nil, nil) records that the
// object is genuinely absent on this platform. Construction failure is a
// configuration defect, not a transient condition, so there is no retry.
type Supplier struct {
	produce func() (Object, error)
	cell    lazy.Cell[resolution]
}

// resolution folds the produce outcome into one memoizable value, so a
// failure is captured just like a success.
type resolution struct {
	obj Object
	err error
}

// NewSupplier creates a supplier around the given produce function.
func NewSupplier(produce func() (Object, error)) *Supplier {
	if produce == nil {
		panic("managed: NewSupplier called with nil produce function")
	}
	return &Supplier{produce: produce}
}

// Resolve returns the supplied object, constructing it on first call.
// A nil object with a nil error means the object is absent.
func (s *Supplier) Resolve() (Object, error) {
	res, _ := s.cell.Get(func() (resolution, error) {
		obj, err := s.produce()
		return resolution{obj: obj, err: err}, nil
	})
	return res.obj, res.err
}

// Resolved returns the constructed object without triggering construction.
// The second result is false until a Resolve call has yielded an object.
func (s *Supplier) Resolved() (Object, bool) {
	res, done := s.cell.Resolved()
	if !done || res.err != nil || res.obj == nil {
		return nil, false
	}
	return res.obj, true
}

// ObjectName implements Object by delegating to the resolved object.
//
// Calling it before resolution, or after resolution yielded no object, is a
// programming error and panics: a supplier has no name of its own, and any
// code path that reaches the name without resolving first is broken.
func (s *Supplier) ObjectName() Name {
	res, done := s.cell.Resolved()
	if !done {
		panic("managed: ObjectName called on unresolved supplier")
	}
	if res.err != nil || res.obj == nil {
		panic("managed: ObjectName called on supplier that yielded no object")
	}
	return res.obj.ObjectName()
}

// String makes supplier values legible in logs and errors.
func (s *Supplier) String() string {
	res, done := s.cell.Resolved()
	switch {
	case !done:
		return "supplier(unresolved)"
	case res.err != nil:
		return "supplier(failed)"
	case res.obj == nil:
		return "supplier(absent)"
	default:
		return fmt.Sprintf("supplier(%s)", res.obj.ObjectName())
	}
}
