package guard

import "errors"

// Argument pairs a parameter label with the value passed for it.
type Argument struct {
	Name  string
	Value any
}

// Arg builds an Argument for AgainstNulls.
func Arg(name string, value any) Argument {
	return Argument{Name: name, Value: value}
}

// AgainstNulls checks every argument in order and joins all failures.
// It returns nil when every value is present.
func AgainstNulls(args ...Argument) error {
	var errs []error
	for _, a := range args {
		if err := AgainstNull(a.Name, a.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
