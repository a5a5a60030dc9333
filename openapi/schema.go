package openapi

import (
	"slices"

	"github.com/speakeasy-api/openapi-typegen/sequencedmap"
	"github.com/speakeasy-api/openapi-typegen/values"
)

// Schema is an OpenAPI 3.0 Schema Object. oneOf, anyOf, not, additionalProperties and default
// are decoded but do not take part in type generation.
type Schema struct {
	Title       *string  `yaml:"title,omitempty"`
	Description *string  `yaml:"description,omitempty"`
	MultipleOf  *float64 `yaml:"multipleOf,omitempty"`
	// Type is the JSON type of the value. "enum" and "unknown" are accepted as extensions.
	Type *string `yaml:"type,omitempty"`
	// Format refines Type, for example date or date-time for strings.
	Format *string `yaml:"format,omitempty"`
	// Enum lists the allowed values as they appear in the document.
	Enum     []values.Value `yaml:"enum,omitempty"`
	Required []string       `yaml:"required,omitempty"`

	Items      *RefOr[Schema]                            `yaml:"items,omitempty"`
	Properties *sequencedmap.Map[string, *RefOr[Schema]] `yaml:"properties,omitempty"`
	AllOf      []*RefOr[Schema]                          `yaml:"allOf,omitempty"`
	OneOf      []*RefOr[Schema]                          `yaml:"oneOf,omitempty"`
	AnyOf      []*RefOr[Schema]                          `yaml:"anyOf,omitempty"`
	Not        *RefOr[Schema]                            `yaml:"not,omitempty"`
	// AdditionalProperties is either a boolean or a schema.
	AdditionalProperties *values.EitherValue[bool, RefOr[Schema]] `yaml:"additionalProperties,omitempty"`

	Default  values.Value `yaml:"default,omitempty"`
	Nullable *bool        `yaml:"nullable,omitempty"`
}

// GetType returns the value of the Type field. Returns empty string if not set.
func (s *Schema) GetType() string {
	if s == nil || s.Type == nil {
		return ""
	}
	return *s.Type
}

// GetFormat returns the value of the Format field. Returns empty string if not set.
func (s *Schema) GetFormat() string {
	if s == nil || s.Format == nil {
		return ""
	}
	return *s.Format
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *Schema) GetDescription() string {
	if s == nil || s.Description == nil {
		return ""
	}
	return *s.Description
}

// IsRequired reports whether the named property is listed in Required.
func (s *Schema) IsRequired(property string) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.Required, property)
}
