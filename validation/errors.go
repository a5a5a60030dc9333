// Package validation describes problems found while matching a document against a shape,
// with the line and column of the offending node.
package validation

import (
	"fmt"

	"github.com/speakeasy-api/openapi-typegen/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrTypeMismatch is a value of the wrong JSON type.
	ErrTypeMismatch errors.Error = "type mismatch"
	// ErrMissingField is a required property that is absent.
	ErrMissingField errors.Error = "missing field"
	// ErrValueInvalid is any other constraint violation.
	ErrValueInvalid errors.Error = "invalid value"
)

// Error represents a validation error and the node where it occurred.
type Error struct {
	UnderlyingError error
	Node            *yaml.Node
	// DocumentLocation is the file or URL the node was read from, if known.
	DocumentLocation string
}

var _ error = (*Error)(nil)

// NewValidationError wraps err with the position of node.
func NewValidationError(err error, node *yaml.Node) *Error {
	return &Error{
		UnderlyingError: err,
		Node:            node,
	}
}

func NewTypeMismatchError(msg string, args ...any) error {
	return ErrTypeMismatch.Wrapf(msg, args...)
}

func NewMissingFieldError(msg string, args ...any) error {
	return ErrMissingField.Wrapf(msg, args...)
}

func NewValueValidationError(msg string, args ...any) error {
	return ErrValueInvalid.Wrapf(msg, args...)
}

func (e Error) Error() string {
	msg := fmt.Sprintf("[%d:%d] %s", e.GetLineNumber(), e.GetColumnNumber(), e.UnderlyingError.Error())
	if e.DocumentLocation != "" {
		return e.DocumentLocation + ":" + msg
	}
	return msg
}

func (e Error) Unwrap() error {
	return e.UnderlyingError
}

// GetLineNumber returns the 1-based line of the node, or -1 when there is no node.
func (e Error) GetLineNumber() int {
	if e.Node == nil {
		return -1
	}
	return e.Node.Line
}

// GetColumnNumber returns the 1-based column of the node, or -1 when there is no node.
func (e Error) GetColumnNumber() int {
	if e.Node == nil {
		return -1
	}
	return e.Node.Column
}
