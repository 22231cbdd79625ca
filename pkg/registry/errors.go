// Package registry implements the build-time catalog of managed objects.
//
// A Registry is populated while a process assembles itself: components bind
// managed objects under typed tags, bindings propagate along declared tag
// extension edges, and a freeze ends the mutation phase. Lookups, identity
// queries, and provenance checks remain available after the freeze.
//
// Import graph: managed <- registry <- query <- platform
package registry

import (
	"fmt"
)

// ErrorCode represents the type of registry error that occurred.
type ErrorCode int

const (
	// ErrDuplicateBinding indicates a tag in the registration closure is
	// already bound, either directly or through another tag's extension
	// edges.
	ErrDuplicateBinding ErrorCode = iota + 1

	// ErrNotFound indicates no binding exists for the requested tag.
	ErrNotFound

	// ErrWrongKind indicates a singleton lookup hit a list binding.
	ErrWrongKind

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen

	// ErrNotReferenceable indicates the object has no reference identity
	// (it is not pointer-backed) and cannot be tracked by the catalog.
	ErrNotReferenceable

	// ErrTagMismatch indicates the object does not implement the tag's
	// interface.
	ErrTagMismatch

	// ErrNilBinding indicates a nil tag, nil object, or empty list was
	// passed to a registration call.
	ErrNilBinding
)

// String returns a human-readable name for the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrDuplicateBinding:
		return "DuplicateBinding"
	case ErrNotFound:
		return "NotFound"
	case ErrWrongKind:
		return "WrongKind"
	case ErrFrozen:
		return "Frozen"
	case ErrNotReferenceable:
		return "NotReferenceable"
	case ErrTagMismatch:
		return "TagMismatch"
	case ErrNilBinding:
		return "NilBinding"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}

// RegistryError represents a catalog error with an error code.
type RegistryError struct {
	Code    ErrorCode
	Message string
	Tag     string
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s: %s (tag: %s)", e.Code, e.Message, e.Tag)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ============================================================================
// Factory Functions
// ============================================================================

// NewDuplicateBindingError creates a DuplicateBinding error.
func NewDuplicateBindingError(tag string) *RegistryError {
	return &RegistryError{
		Code:    ErrDuplicateBinding,
		Message: "tag already bound",
		Tag:     tag,
	}
}

// NewNotFoundError creates a NotFound error.
func NewNotFoundError(tag string) *RegistryError {
	return &RegistryError{
		Code:    ErrNotFound,
		Message: "no binding for tag",
		Tag:     tag,
	}
}

// NewWrongKindError creates a WrongKind error.
func NewWrongKindError(tag string) *RegistryError {
	return &RegistryError{
		Code:    ErrWrongKind,
		Message: "tag is bound to a list, not a singleton",
		Tag:     tag,
	}
}

// NewFrozenError creates a Frozen error.
func NewFrozenError(operation string) *RegistryError {
	return &RegistryError{
		Code:    ErrFrozen,
		Message: fmt.Sprintf("registry is frozen: %s rejected", operation),
	}
}

// NewNotReferenceableError creates a NotReferenceable error.
func NewNotReferenceableError(typeName string) *RegistryError {
	return &RegistryError{
		Code:    ErrNotReferenceable,
		Message: fmt.Sprintf("%s has no reference identity, register a pointer instead", typeName),
	}
}

// NewTagMismatchError creates a TagMismatch error.
func NewTagMismatchError(tag, typeName string) *RegistryError {
	return &RegistryError{
		Code:    ErrTagMismatch,
		Message: fmt.Sprintf("%s does not implement the tag interface", typeName),
		Tag:     tag,
	}
}

// NewNilBindingError creates a NilBinding error.
func NewNilBindingError(message string) *RegistryError {
	return &RegistryError{
		Code:    ErrNilBinding,
		Message: message,
	}
}

// ============================================================================
// Error Type Checking Helpers
// ============================================================================

// IsDuplicateBindingError returns true if the error is a DuplicateBinding error.
func IsDuplicateBindingError(err error) bool {
	if regErr, ok := err.(*RegistryError); ok {
		return regErr.Code == ErrDuplicateBinding
	}
	return false
}

// IsNotFoundError returns true if the error is a NotFound error.
func IsNotFoundError(err error) bool {
	if regErr, ok := err.(*RegistryError); ok {
		return regErr.Code == ErrNotFound
	}
	return false
}

// IsWrongKindError returns true if the error is a WrongKind error.
func IsWrongKindError(err error) bool {
	if regErr, ok := err.(*RegistryError); ok {
		return regErr.Code == ErrWrongKind
	}
	return false
}

// IsFrozenError returns true if the error indicates a frozen registry.
func IsFrozenError(err error) bool {
	if regErr, ok := err.(*RegistryError); ok {
		return regErr.Code == ErrFrozen
	}
	return false
}

// IsNotReferenceableError returns true if the error is a NotReferenceable error.
func IsNotReferenceableError(err error) bool {
	if regErr, ok := err.(*RegistryError); ok {
		return regErr.Code == ErrNotReferenceable
	}
	return false
}

// IsTagMismatchError returns true if the error is a TagMismatch error.
func IsTagMismatchError(err error) bool {
	if regErr, ok := err.(*RegistryError); ok {
		return regErr.Code == ErrTagMismatch
	}
	return false
}
