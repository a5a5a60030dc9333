package swagger

import (
	"slices"

	"github.com/speakeasy-api/openapi-typegen/references"
	"github.com/speakeasy-api/openapi-typegen/sequencedmap"
)

// Schema is a Swagger 2.0 Schema Object, limited to the keywords that shape a type.
type Schema struct {
	// Ref is a reference to another definition in the same document.
	Ref *references.Reference `yaml:"$ref,omitempty"`
	// Description is a free text description of the schema.
	Description *string `yaml:"description,omitempty"`
	// Type is the JSON type of the value.
	Type *string `yaml:"type,omitempty"`
	// Format refines Type, for example date-time for strings.
	Format *string `yaml:"format,omitempty"`
	// Enum lists the allowed values, as strings.
	Enum []string `yaml:"enum,omitempty"`
	// Required lists the properties that must be present.
	Required []string `yaml:"required,omitempty"`
	// Items is the schema of array elements.
	Items *Schema `yaml:"items,omitempty"`
	// Properties maps property names to their schemas, in document order.
	Properties *sequencedmap.Map[string, *Schema] `yaml:"properties,omitempty"`
	// AllOf lists schemas the value must satisfy together.
	AllOf []*Schema `yaml:"allOf,omitempty"`
}

// GetRef returns the value of the Ref field. Returns empty string if not set.
func (s *Schema) GetRef() references.Reference {
	if s == nil || s.Ref == nil {
		return ""
	}
	return *s.Ref
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
