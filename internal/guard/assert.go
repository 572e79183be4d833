package guard

// AssertNotNil panics if the provided pointer is nil.
// It is meant for constructors and wiring code where a missing dependency is a
// programmer error rather than bad input.
//
// The panic value is the same *ArgumentError AgainstNullPtr returns.
//
// Usage:
//
//	guard.AssertNotNil(pool, "database pool")
func AssertNotNil[T any](ptr *T, name string) {
	if err := AgainstNullPtr(name, ptr); err != nil {
		panic(err)
	}
}

// MustNotNull is the panicking form of AgainstNull.
func MustNotNull(argumentName string, value any) {
	if err := AgainstNull(argumentName, value); err != nil {
		panic(err)
	}
}
