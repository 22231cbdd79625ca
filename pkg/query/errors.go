package query

import (
	"errors"
	"fmt"

	"github.com/aetheriaxai/graal/pkg/managed"
)

// ErrObjectNotFound is returned by server lookups for names that no
// materialized object carries.
var ErrObjectNotFound = errors.New("no managed object with that name")

// ErrNotSubscribable is returned when a subscription is requested for an
// object that does not emit events.
var ErrNotSubscribable = errors.New("managed object does not emit events")

// ErrDuplicateName indicates two materialized objects produced the same
// object name.
var ErrDuplicateName = errors.New("object name already in use")

// ErrZeroName indicates a materialized object returned the zero Name.
var ErrZeroName = errors.New("object returned a zero name")

// MaterializeError reports why building the catalog server failed. The
// failed build leaves no partial server behind; the next materialization
// attempt starts from scratch.
type MaterializeError struct {
	// Tag names the binding being installed when the failure hit.
	// May be empty when the failure is not tied to a single tag.
	Tag string

	// Name is the object name involved, when one was available.
	Name managed.Name

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *MaterializeError) Error() string {
	switch {
	case e.Tag != "" && !e.Name.IsZero():
		return fmt.Sprintf("materialize catalog: %v (tag: %s, object: %s)", e.Err, e.Tag, e.Name)
	case e.Tag != "":
		return fmt.Sprintf("materialize catalog: %v (tag: %s)", e.Err, e.Tag)
	case !e.Name.IsZero():
		return fmt.Sprintf("materialize catalog: %v (object: %s)", e.Err, e.Name)
	default:
		return fmt.Sprintf("materialize catalog: %v", e.Err)
	}
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *MaterializeError) Unwrap() error {
	return e.Err
}
