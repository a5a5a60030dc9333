package swagger_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/speakeasy-api/openapi-typegen/swagger"
	"github.com/speakeasy-api/openapi-typegen/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "minimal valid swagger document",
			yaml: `swagger: "2.0"
info:
  title: Test API
  version: 1.0.0
paths: {}`,
		},
		{
			name: "unquoted version",
			yaml: `swagger: 2.0
info:
  title: Test API
  version: 1.0
paths: {}`,
		},
		{
			name: "swagger with host and basePath",
			yaml: `swagger: "2.0"
info:
  title: Test API
  version: 1.0.0
host: api.example.com
basePath: /v1
paths: {}`,
		},
		{
			name: "json document without info",
			yaml: `{"swagger": "2.0", "definitions": {"Pet": {"type": "object"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := t.Context()

			doc, validationErrs, err := swagger.Unmarshal(ctx, strings.NewReader(tt.yaml))
			require.NoError(t, err, "unmarshal should succeed")
			require.Empty(t, validationErrs, "should have no validation errors")
			require.NotNil(t, doc, "document should not be nil")
			assert.Equal(t, "2.0", doc.GetSwagger(), "swagger version should be 2.0")
		})
	}
}

func TestUnmarshal_Fields(t *testing.T) {
	t.Parallel()

	doc, validationErrs, err := swagger.Unmarshal(t.Context(), strings.NewReader(`swagger: "2.0"
info:
  title: Pet Store
  description: pets
  version: "1"
host: api.example.com
basePath: /v1
definitions:
  Pet:
    type: object
    required: [name]
    properties:
      name:
        type: string
      tag:
        $ref: "#/definitions/Tag"
  Tag:
    type: string
    enum: [a, 1, true]
`))
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	assert.Equal(t, "Pet Store", doc.GetInfo().GetTitle())
	assert.Equal(t, "pets", doc.GetInfo().GetDescription())
	assert.Equal(t, "1", doc.GetInfo().GetVersion())
	assert.Equal(t, "api.example.com", doc.GetHost())
	assert.Equal(t, "/v1", doc.GetBasePath())

	defs := doc.GetDefinitions()
	require.NotNil(t, defs)
	assert.Equal(t, []string{"Pet", "Tag"}, slices.Collect(defs.Keys()))

	pet := defs.GetOrZero("Pet")
	assert.Equal(t, "object", pet.GetType())
	assert.True(t, pet.IsRequired("name"))
	assert.False(t, pet.IsRequired("tag"))
	assert.Equal(t, "#/definitions/Tag", pet.Properties.GetOrZero("tag").GetRef().String())

	assert.Equal(t, []string{"a", "1", "true"}, defs.GetOrZero("Tag").Enum, "scalar enum members decode as strings")
}

func TestUnmarshal_ShapeMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		yaml         string
		expectedKind error
		expectedLine int
	}{
		{
			name: "missing swagger field",
			yaml: `info:
  title: Test API
  version: 1.0.0`,
			expectedKind: validation.ErrMissingField,
			expectedLine: 1,
		},
		{
			name: "openapi document",
			yaml: `openapi: 3.0.0
info:
  title: Test API
  version: 1.0.0
paths: {}`,
			expectedKind: validation.ErrMissingField,
			expectedLine: 1,
		},
		{
			name:         "wrong swagger version",
			yaml:         `swagger: "3.0"`,
			expectedKind: validation.ErrValueInvalid,
			expectedLine: 1,
		},
		{
			name: "definition with wrong field type",
			yaml: `swagger: "2.0"
definitions:
  Pet:
    type: object
    required: name`,
			expectedKind: validation.ErrTypeMismatch,
			expectedLine: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, validationErrs, err := swagger.Unmarshal(t.Context(), strings.NewReader(tt.yaml))
			require.NoError(t, err)
			assert.Nil(t, doc, "no document should be returned for a shape mismatch")
			require.NotEmpty(t, validationErrs)

			var vErr *validation.Error
			require.ErrorAs(t, validationErrs[0], &vErr)
			assert.ErrorIs(t, validationErrs[0], tt.expectedKind)
			assert.Equal(t, tt.expectedLine, vErr.GetLineNumber())
		})
	}
}

func TestUnmarshal_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed yaml", yaml: "swagger: [2.0"},
		{name: "empty document", yaml: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, _, err := swagger.Unmarshal(t.Context(), strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, doc)
		})
	}
}
