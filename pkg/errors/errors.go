// Package errors defines the script-visible error kinds of the Vela
// native bridge. Every error raises at the point of detection and
// propagates unhandled through the native-call boundary; the bridge
// never swallows or retries.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies a script-visible error category.
type Kind string

const (
	// KindType is a failed coercion or a non-comparable sort element.
	KindType Kind = "TypeError"
	// KindIndex is an out-of-bounds sequence access.
	KindIndex Kind = "IndexError"
	// KindArgument is a malformed native-call argument list.
	KindArgument Kind = "ArgumentError"
	// KindSerialization is a JSON conversion failure, including
	// serializing null.
	KindSerialization Kind = "SerializationError"
	// KindHostIO surfaces a host collaborator failure unchanged.
	KindHostIO Kind = "HostIOError"
	// KindRegistration is a fatal startup failure while building the
	// module namespace. It is the only non-recoverable kind.
	KindRegistration Kind = "RegistrationError"
)

// Error is a script-visible runtime error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error // set for HostIOError and RegistrationError wrappers
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewTypeError creates a TypeError.
func NewTypeError(format string, args ...any) *Error {
	return &Error{Kind: KindType, Message: fmt.Sprintf(format, args...)}
}

// NewIndexError creates an IndexError.
func NewIndexError(format string, args ...any) *Error {
	return &Error{Kind: KindIndex, Message: fmt.Sprintf(format, args...)}
}

// NewArgumentError creates an ArgumentError.
func NewArgumentError(format string, args ...any) *Error {
	return &Error{Kind: KindArgument, Message: fmt.Sprintf(format, args...)}
}

// NewSerializationError creates a SerializationError.
func NewSerializationError(format string, args ...any) *Error {
	return &Error{Kind: KindSerialization, Message: fmt.Sprintf(format, args...)}
}

// NewHostIOError wraps a collaborator failure. The cause is carried
// unchanged for the interpreter's error construct to inspect.
func NewHostIOError(op string, cause error) *Error {
	return &Error{Kind: KindHostIO, Message: op + ": " + cause.Error(), Cause: cause}
}

// NewRegistrationError creates a fatal startup error.
func NewRegistrationError(format string, args ...any) *Error {
	return &Error{Kind: KindRegistration, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or the empty kind when err is not a
// script-visible error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
