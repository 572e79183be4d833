package guard

import (
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrInvalidArgument is the single error kind produced by this package.
// Every guard failure matches it through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which caller-supplied argument was absent.
type ArgumentError struct {
	// Argument is the label passed to the guard, kept verbatim.
	Argument string
}

func newArgumentError(argumentName string) *ArgumentError {
	return &ArgumentError{Argument: argumentName}
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s cannot be nil", ErrInvalidArgument, e.Argument)
}

// Unwrap exposes ErrInvalidArgument to errors.Is.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// GRPCStatus lets status.FromError classify the failure as INVALID_ARGUMENT
// when a handler returns it unchanged.
func (e *ArgumentError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// LogValue implements slog.LogValuer.
func (e *ArgumentError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", codes.InvalidArgument.String()),
		slog.String("argument", e.Argument),
	)
}

// IsInvalidArgument reports whether err (or anything it wraps) is a guard failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// ArgumentName returns the label carried by the first ArgumentError found in
// err's chain.
func ArgumentName(err error) (string, bool) {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Argument, true
	}
	return "", false
}
