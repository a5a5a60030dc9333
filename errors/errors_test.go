package errors_test

import (
	"fmt"
	"testing"

	"github.com/speakeasy-api/openapi-typegen/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      errors.Error
		target   error
		expected bool
	}{
		{
			name:     "exact match",
			err:      errors.ErrInvalidReference,
			target:   errors.ErrInvalidReference,
			expected: true,
		},
		{
			name:     "wrapped error with separator",
			err:      errors.ErrInvalidReference,
			target:   errors.ErrInvalidReference.Wrap(fmt.Errorf("bad prefix")),
			expected: true,
		},
		{
			name:     "different error",
			err:      errors.ErrInvalidReference,
			target:   errors.ErrUnsupportedSchemaShape,
			expected: false,
		},
		{
			name:     "nil target",
			err:      errors.ErrDeserialization,
			target:   nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Is(tt.target))
		})
	}
}

func TestError_Wrap_Success(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("reference %q", "#/foo/Pet")
	err := errors.ErrInvalidReference.Wrap(cause)

	assert.Equal(t, `invalid reference -- reference "#/foo/Pet"`, err.Error())
	require.ErrorIs(t, err, errors.ErrInvalidReference)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestError_Wrapf_Success(t *testing.T) {
	t.Parallel()

	err := errors.ErrUnsupportedSchemaShape.Wrapf("unknown type %q", "file")

	assert.Equal(t, `unsupported schema shape -- unknown type "file"`, err.Error())
	require.ErrorIs(t, err, errors.ErrUnsupportedSchemaShape)
	assert.False(t, errors.Is(err, errors.ErrInvalidReference))
}

func TestError_WrapNil_Success(t *testing.T) {
	t.Parallel()

	err := errors.ErrDeserialization.Wrap(nil)
	assert.Equal(t, errors.ErrDeserialization.Error(), err.Error())
}

func TestUnwrapErrors_Success(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	second := errors.New("second")

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, errors.UnwrapErrors(nil))
	})

	t.Run("single error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []error{first}, errors.UnwrapErrors(first))
	})

	t.Run("joined errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []error{first, second}, errors.UnwrapErrors(errors.Join(first, second)))
	})

	t.Run("joined errors behind a wrapped const", func(t *testing.T) {
		t.Parallel()
		err := errors.ErrDeserialization.Wrap(errors.Join(first, second))
		assert.Equal(t, []error{first, second}, errors.UnwrapErrors(err))
	})
}
