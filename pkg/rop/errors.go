package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPayload is the panic value of a Success/Failure factory given a
	// nil payload.
	ErrNilPayload = errors.New("nil payload")
	// ErrNilArgument is the panic value of a combinator whose function
	// argument is nil and would have been called.
	ErrNilArgument = errors.New("nil argument")
	// ErrWrongVariant is the panic value of UnsafeGet/UnsafeGetError called
	// on the other variant.
	ErrWrongVariant = errors.New("wrong variant")

	// ErrUnsupportedVersion is returned when decoding an envelope whose
	// version tag is not FormatVersion.
	ErrUnsupportedVersion = errors.New("unsupported format version")
	// ErrUnknownVariant is returned when an envelope variant is missing or
	// not one of "success" and "failure".
	ErrUnknownVariant = errors.New("unknown variant")
)

// NilPayload wraps ErrNilPayload naming the offending payload.
func NilPayload(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrNilPayload, name)
}

// NilArgument wraps ErrNilArgument naming the offending argument.
func NilArgument(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrNilArgument, name)
}

// WrongVariant wraps ErrWrongVariant with the operation and the variant it
// was called on.
func WrongVariant(op string, on Variant) error {
	return fmt.Errorf("%w: %s() on %s", ErrWrongVariant, op, on)
}

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Capture turns a value returned by recover() into an error. Errors are kept
// as they are.
func Capture(recovered any) error {
	if err, ok := recovered.(error); ok && err != nil {
		return err
	}
	return &PanicError{Value: recovered}
}
