package registry

import (
	"reflect"

	"github.com/aetheriaxai/graal/pkg/managed"
)

// identityKey distinguishes managed objects by reference identity rather
// than structural equality. Two pointers to equal struct values are two
// different objects; the same pointer seen through two tags is one.
//
// The pointer half of the key stays valid because the registry holds a
// strong reference to every object it tracks.
type identityKey struct {
	typ reflect.Type
	ptr uintptr
}

// identityOf extracts the identity key for an object. Objects must be
// pointer-backed; values without reference identity cannot be tracked and
// are rejected at registration.
func identityOf(obj managed.Object) (identityKey, error) {
	if obj == nil {
		return identityKey{}, NewNilBindingError("cannot take identity of nil object")
	}
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer {
		return identityKey{}, NewNotReferenceableError(v.Type().String())
	}
	if v.IsNil() {
		return identityKey{}, NewNilBindingError("cannot take identity of typed nil object")
	}
	return identityKey{typ: v.Type(), ptr: v.Pointer()}, nil
}
