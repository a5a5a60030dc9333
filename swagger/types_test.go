package swagger_test

import (
	"strings"
	"testing"

	"github.com/speakeasy-api/openapi-typegen/errors"
	"github.com/speakeasy-api/openapi-typegen/literal"
	"github.com/speakeasy-api/openapi-typegen/swagger"
	"github.com/speakeasy-api/openapi-typegen/tstype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseSchema(t *testing.T, src string) *swagger.Schema {
	t.Helper()

	var schema swagger.Schema
	require.NoError(t, yaml.Unmarshal([]byte(src), &schema), "schema fixture should decode")
	return &schema
}

func TestTypeOf_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		schema   string
		expected tstype.Type
	}{
		{
			name:     "reference",
			schema:   `$ref: "#/definitions/Pet"`,
			expected: tstype.Named("Pet"),
		},
		{
			name: "reference wins over type",
			schema: `$ref: "#/definitions/Pet"
type: string`,
			expected: tstype.Named("Pet"),
		},
		{
			name: "allOf",
			schema: `allOf:
  - $ref: "#/definitions/Base"
  - type: object
    properties:
      id:
        type: integer`,
			expected: tstype.Product{
				tstype.Named("Base"),
				tstype.Record{{Name: "id", Type: tstype.Number}},
			},
		},
		{name: "integer", schema: `type: integer`, expected: tstype.Number},
		{name: "number", schema: `type: number`, expected: tstype.Number},
		{name: "boolean", schema: `type: boolean`, expected: tstype.Boolean},
		{name: "string", schema: `type: string`, expected: tstype.String},
		{name: "date-time string", schema: "type: string\nformat: date-time", expected: tstype.Date},
		{name: "date string stays string", schema: "type: string\nformat: date", expected: tstype.String},
		{
			name:   "string enum",
			schema: "type: string\nenum: [a, b]",
			expected: tstype.Sum{
				tstype.Literal{Value: literal.Str("a")},
				tstype.Literal{Value: literal.Str("b")},
			},
		},
		{
			name:     "array",
			schema:   "type: array\nitems:\n  type: string",
			expected: tstype.Array{Elem: tstype.String},
		},
		{name: "array without items", schema: `type: array`, expected: tstype.Any},
		{name: "unknown type", schema: `type: file`, expected: tstype.Any},
		{name: "object without properties", schema: `type: object`, expected: tstype.Record{}},
		{
			name:     "missing type ignores properties",
			schema:   "properties:\n  a:\n    type: string",
			expected: tstype.Record{},
		},
		{
			name: "object keeps property order and required flags",
			schema: `type: object
required: [name]
properties:
  name:
    type: string
  age:
    type: integer`,
			expected: tstype.Record{
				{Name: "name", Required: true, Type: tstype.String},
				{Name: "age", Required: false, Type: tstype.Number},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := swagger.TypeOf(parseSchema(t, tt.schema))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTypeOf_EnumRendering(t *testing.T) {
	t.Parallel()

	got, err := swagger.TypeOf(parseSchema(t, "type: string\nenum: [a, b]"))
	require.NoError(t, err)
	assert.Equal(t, "'a'|'b'", got.String())
}

func TestTypeOf_Nil(t *testing.T) {
	t.Parallel()

	got, err := swagger.TypeOf(nil)
	require.NoError(t, err)
	assert.Equal(t, tstype.Record{}, got)
}

func TestTypeOf_InvalidReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema string
	}{
		{name: "components prefix", schema: `$ref: "#/components/schemas/Pet"`},
		{name: "nested in items", schema: "type: array\nitems:\n  $ref: Pet"},
		{name: "nested in property", schema: "type: object\nproperties:\n  owner:\n    $ref: \"other.yaml#/definitions/Owner\""},
		{name: "nested in allOf", schema: "allOf:\n  - $ref: \"#/definitions/\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := swagger.TypeOf(parseSchema(t, tt.schema))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidReference)
		})
	}
}

func TestSwagger_Declarations_Success(t *testing.T) {
	t.Parallel()

	doc, validationErrs, err := swagger.Unmarshal(t.Context(), strings.NewReader(`swagger: "2.0"
definitions:
  Pet:
    type: object
    required: [name]
    properties:
      name:
        type: string
      age:
        type: integer
  Pets:
    type: array
    items:
      $ref: "#/definitions/Pet"
`))
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	decls, err := doc.Declarations()
	require.NoError(t, err)
	require.Len(t, decls, 2)

	assert.Equal(t, `export type Pet = {"name" : string;"age" ? : number;};`, decls[0].String())
	assert.Equal(t, `export type Pets = Pet[];`, decls[1].String())
}

func TestSwagger_Declarations_NoDefinitions(t *testing.T) {
	t.Parallel()

	doc := &swagger.Swagger{Swagger: swagger.Version}

	decls, err := doc.Declarations()
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestSwagger_Declarations_Error(t *testing.T) {
	t.Parallel()

	doc, _, err := swagger.Unmarshal(t.Context(), strings.NewReader(`swagger: "2.0"
definitions:
  Pet:
    $ref: "#/components/schemas/Animal"
`))
	require.NoError(t, err)

	_, err = doc.Declarations()
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrInvalidReference)
	assert.Contains(t, err.Error(), "definition Pet")
}
