package rop

import (
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, func,
// channel or unsafe pointer.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens an errors.Join style error into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// RequirePayload panics with ErrNilPayload when v is nil.
func RequirePayload(v any, name string) {
	if IsNil(v) {
		panic(NilPayload(name))
	}
}
