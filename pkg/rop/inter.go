package rop

import "fmt"

// Outcome is implemented by both containers.
type Outcome interface {
	fmt.Stringer
	// IsSuccess returns true for the success variant
	IsSuccess() bool
	// IsFailure returns true for the failure variant
	IsFailure() bool
}

// WithError defines an outcome that can hand out its failure payload
type WithError[E any] interface {
	Outcome
	// UnsafeGetError returns the error or panics on success
	UnsafeGetError() E
}

// WithValue extends WithError with access to the success payload
type WithValue[V, E any] interface {
	WithError[E]
	// UnsafeGet returns the value or panics on failure
	UnsafeGet() V
}

// VariantOf names the active variant of o.
func VariantOf(o Outcome) Variant {
	if o.IsSuccess() {
		return SuccessVariant
	}
	return FailureVariant
}
