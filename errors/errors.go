// Package errors holds the error taxonomy shared by the translators and the
// document dispatcher, and a const-friendly string error type to build it.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeparator separates an error's message from its cause.
const ErrSeparator = " -- "

const (
	// ErrDeserialization is returned when the input matches neither the Swagger 2.0
	// nor the OpenAPI 3.0 document shape, or a matched shape has a field of the wrong type.
	ErrDeserialization Error = "document is not a valid Swagger 2.0 or OpenAPI 3.0 document"
	// ErrInvalidReference is returned when a $ref does not use the local prefix of its dialect.
	ErrInvalidReference Error = "invalid reference"
	// ErrUnsupportedSchemaShape is returned when a schema cannot be lowered to a type.
	ErrUnsupportedSchemaShape Error = "unsupported schema shape"
)

// Error is a string based error so packages can declare const errors.
type Error string

func (s Error) Error() string {
	return string(s)
}

// Is reports whether target is this Error, either directly or as the message of a wrapped Error.
func (s Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return s.Error() == target.Error() || strings.HasPrefix(target.Error(), s.Error()+ErrSeparator)
}

// Wrap attaches err as the cause of this Error.
func (s Error) Wrap(err error) error {
	return wrappedError{cause: err, msg: string(s)}
}

// Wrapf attaches a formatted cause to this Error.
func (s Error) Wrapf(format string, args ...any) error {
	return s.Wrap(fmt.Errorf(format, args...))
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return w.msg + ErrSeparator + w.cause.Error()
	}
	return w.msg
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// The below wrap the standard library as this package takes over its namespace.

// Is reports whether any error in err's tree matches target.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New returns an error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// UnwrapErrors flattens an error created by Join (directly or as the cause of a
// wrapped Error) into its parts.
func UnwrapErrors(err error) []error {
	if err == nil {
		return nil
	}

	type joined interface {
		Unwrap() []error
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if je, ok := e.(joined); ok {
			return je.Unwrap()
		}
	}
	return []error{err}
}
