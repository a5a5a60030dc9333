// Package values provides value containers used by the document models.
package values

import (
	"errors"
	"fmt"

	"github.com/speakeasy-api/openapi-typegen/yml"
	"gopkg.in/yaml.v3"
)

var errNoMatch = errors.New("node does not match")

// Matcher can be implemented by a variant type (on its pointer) when a successful decode is
// not enough to tell that a node has its shape, for example a struct whose key field is required.
type Matcher interface {
	MatchesNode(node *yaml.Node) bool
}

// EitherValue represents an untagged union that holds either a Left or a Right value.
// When decoded, Left is attempted first and the first variant that matches the node wins.
//
// Direct field access (Left, Right) - for setting values
// Pointer access (GetLeft, GetRight) - for nil-safe pointer retrieval
// Value access (LeftValue, RightValue) - for nil-safe value retrieval with zero value fallback
type EitherValue[L any, R any] struct {
	// Left holds the left-side value.
	Left *L
	// Right holds the right-side value.
	Right *R
}

var _ yaml.Unmarshaler = (*EitherValue[bool, string])(nil)

// NewEitherValueFromLeft creates an EitherValue holding a left value.
func NewEitherValueFromLeft[L any, R any](value L) *EitherValue[L, R] {
	return &EitherValue[L, R]{Left: &value}
}

// NewEitherValueFromRight creates an EitherValue holding a right value.
func NewEitherValueFromRight[L any, R any](value R) *EitherValue[L, R] {
	return &EitherValue[L, R]{Right: &value}
}

// IsLeft returns true if the EitherValue contains a left value.
func (e *EitherValue[L, R]) IsLeft() bool {
	if e == nil {
		return false
	}

	return e.Left != nil
}

// GetLeft returns a pointer to the left value in a nil-safe way.
func (e *EitherValue[L, R]) GetLeft() *L {
	if e == nil {
		return nil
	}

	return e.Left
}

// LeftValue returns the left value, or the zero value of L if there is none.
func (e *EitherValue[L, R]) LeftValue() L {
	if e == nil || e.Left == nil {
		var zero L
		return zero
	}

	return *e.Left
}

// IsRight returns true if the EitherValue contains a right value.
func (e *EitherValue[L, R]) IsRight() bool {
	if e == nil {
		return false
	}

	return e.Right != nil && e.Left == nil
}

// GetRight returns a pointer to the right value in a nil-safe way.
func (e *EitherValue[L, R]) GetRight() *R {
	if e == nil {
		return nil
	}

	return e.Right
}

// RightValue returns the right value, or the zero value of R if there is none.
func (e *EitherValue[L, R]) RightValue() R {
	if e == nil || e.Right == nil {
		var zero R
		return zero
	}

	return *e.Right
}

// UnmarshalYAML decodes node into Left, falling back to Right.
func (e *EitherValue[L, R]) UnmarshalYAML(node *yaml.Node) error {
	node = yml.ResolveAlias(node)

	var left L
	leftErr := decodeVariant(node, &left)
	if leftErr == nil {
		e.Left, e.Right = &left, nil
		return nil
	}

	var right R
	rightErr := decodeVariant(node, &right)
	if rightErr == nil {
		e.Left, e.Right = nil, &right
		return nil
	}

	return fmt.Errorf("line %d: %s matches neither %T nor %T: %w", node.Line, yml.NodeKindToString(node.Kind), left, right, errors.Join(leftErr, rightErr))
}

func decodeVariant[T any](node *yaml.Node, target *T) error {
	if m, ok := any(target).(Matcher); ok && !m.MatchesNode(node) {
		return errNoMatch
	}
	return node.Decode(target)
}
