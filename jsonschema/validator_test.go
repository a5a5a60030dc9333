package jsonschema_test

import (
	"sync"
	"testing"

	"github.com/speakeasy-api/openapi-typegen/jsonschema"
	"github.com/speakeasy-api/openapi-typegen/testutils"
	"github.com/speakeasy-api/openapi-typegen/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"},
    "tags": {"type": "array", "items": {"type": "string"}}
  }
}`

func TestValidator_Validate_Success(t *testing.T) {
	t.Parallel()

	v := jsonschema.NewValidator("pet.json", petSchema)

	errs := v.Validate(testutils.ParseYamlNode("name: rex\ntags: [good, dog]"))
	assert.Empty(t, errs)
}

func TestValidator_Validate_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		yaml         string
		expectedKind error
		expectedLine int
		expectedCol  int
		contains     string
	}{
		{
			name:         "missing required field",
			yaml:         "tags: []",
			expectedKind: validation.ErrMissingField,
			expectedLine: 1,
			expectedCol:  1,
			contains:     "name",
		},
		{
			name:         "wrong type in sequence",
			yaml:         "name: rex\ntags:\n  - good\n  - 3",
			expectedKind: validation.ErrTypeMismatch,
			expectedLine: 4,
			expectedCol:  5,
			contains:     "/tags/1",
		},
		{
			name:         "wrong root type",
			yaml:         "- rex",
			expectedKind: validation.ErrTypeMismatch,
			expectedLine: 1,
			expectedCol:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := jsonschema.NewValidator("pet.json", petSchema)

			errs := v.Validate(testutils.ParseYamlNode(tt.yaml))
			require.Len(t, errs, 1, "expected exactly one root cause")

			var vErr *validation.Error
			require.ErrorAs(t, errs[0], &vErr)
			assert.ErrorIs(t, errs[0], tt.expectedKind)
			assert.Equal(t, tt.expectedLine, vErr.GetLineNumber())
			assert.Equal(t, tt.expectedCol, vErr.GetColumnNumber())
			if tt.contains != "" {
				assert.Contains(t, errs[0].Error(), tt.contains)
			}
		})
	}
}

func TestValidator_Validate_InvalidSchema(t *testing.T) {
	t.Parallel()

	v := jsonschema.NewValidator("broken.json", `{"type": `)

	errs := v.Validate(testutils.ParseYamlNode("name: rex"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "failed to compile")
}

func TestValidator_Validate_Concurrent(t *testing.T) {
	t.Parallel()

	v := jsonschema.NewValidator("pet.json", petSchema)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Empty(t, v.Validate(testutils.ParseYamlNode("name: rex")))
		}()
	}
	wg.Wait()
}
