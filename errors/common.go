package errors

import (
	"fmt"
)

// NormalizePanic converts a panic into a redacted error.
//
// We want the whole stack trace for logging but should show nothing
// sensitive to the caller.
func NormalizePanic(p interface{}) error {
	if err, ok := p.(error); ok {
		return Wrap(ErrPanic, err.Error())
	}
	return Wrapf(ErrPanic, "%v", p)
}

// Redact replaces all panic errors with a generic message to avoid
// leaking system internals to the caller.
func Redact(err error) error {
	if ErrPanic.Is(err) {
		return Wrap(ErrHuman, "internal error")
	}
	return err
}

// Recover takes a pointer to the returned error,
// and sets it upon panic
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = NormalizePanic(r)
	}
}

// WithType is a helper to augment an error with a corresponding type message
func WithType(err error, obj interface{}) error {
	return Wrap(err, fmt.Sprintf("%T", obj))
}
