package validation_test

import (
	"errors"
	"testing"

	"github.com/speakeasy-api/openapi-typegen/validation"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestError_Error_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *validation.Error
		expected string
	}{
		{
			name:     "error with valid node",
			err:      validation.NewValidationError(errors.New("test error"), &yaml.Node{Line: 10, Column: 5}),
			expected: "[10:5] test error",
		},
		{
			name:     "error with nil node",
			err:      validation.NewValidationError(errors.New("test error"), nil),
			expected: "[-1:-1] test error",
		},
		{
			name: "error with document location",
			err: &validation.Error{
				UnderlyingError:  errors.New("test error"),
				Node:             &yaml.Node{Line: 1, Column: 2},
				DocumentLocation: "petstore.yaml",
			},
			expected: "petstore.yaml:[1:2] test error",
		},
		{
			name:     "type mismatch",
			err:      validation.NewValidationError(validation.NewTypeMismatchError("field %s expected string", "title"), &yaml.Node{Line: 3, Column: 10}),
			expected: "[3:10] type mismatch -- field title expected string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := validation.NewValidationError(validation.NewMissingFieldError("info is required"), nil)

	assert.ErrorIs(t, err, validation.ErrMissingField)
	assert.NotErrorIs(t, err, validation.ErrTypeMismatch)

	var vErr *validation.Error
	assert.ErrorAs(t, error(err), &vErr)
}
