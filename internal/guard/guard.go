// Package guard provides the argument null guard used at the top of functions
// that accept externally supplied references.
//
// A guard call either returns nil or an *ArgumentError of kind
// ErrInvalidArgument naming the offending parameter. It never logs, retries or
// recovers: the caller decides what to do with the failure.
//
// Usage:
//
//	if err := guard.AgainstNull("user", user); err != nil {
//		return fmt.Errorf("create session: %w", err)
//	}
package guard

import "reflect"

// AgainstNull returns an *ArgumentError when value is absent.
//
// Absent means the nil interface, or a nil pointer, map, channel, func,
// interface or unsafe pointer stored in it. A nil slice is a valid empty slice
// and passes, as do all value kinds that cannot be nil.
func AgainstNull(argumentName string, value any) error {
	if isNil(value) {
		return newArgumentError(argumentName)
	}
	return nil
}

// AgainstNullPtr is the reflection-free form of AgainstNull for pointers.
func AgainstNullPtr[T any](argumentName string, ptr *T) error {
	if ptr == nil {
		return newArgumentError(argumentName)
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
