package swagger

import (
	"fmt"

	"github.com/speakeasy-api/openapi-typegen/literal"
	"github.com/speakeasy-api/openapi-typegen/references"
	"github.com/speakeasy-api/openapi-typegen/tstype"
)

// Declarations lowers every entry of Definitions, in document order.
func (s *Swagger) Declarations() ([]tstype.Declaration, error) {
	defs := s.GetDefinitions()
	if defs == nil {
		return nil, nil
	}

	decls := make([]tstype.Declaration, 0, defs.Len())
	for name, schema := range defs.All() {
		t, err := TypeOf(schema)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", name, err)
		}
		decls = append(decls, tstype.Declaration{Name: name, Type: t})
	}

	return decls, nil
}

// TypeOf lowers a schema to a type. A $ref wins over allOf, which wins over type. Unknown types
// widen to any, and a schema with no type at all is an empty record.
func TypeOf(schema *Schema) (tstype.Type, error) {
	if schema == nil {
		return tstype.Record{}, nil
	}

	if schema.Ref != nil {
		name, err := schema.Ref.LocalName(references.DefinitionsPrefix)
		if err != nil {
			return nil, err
		}
		return tstype.Named(name), nil
	}

	if schema.AllOf != nil {
		members := make(tstype.Product, 0, len(schema.AllOf))
		for i, s := range schema.AllOf {
			t, err := TypeOf(s)
			if err != nil {
				return nil, fmt.Errorf("allOf[%d]: %w", i, err)
			}
			members = append(members, t)
		}
		return members, nil
	}

	if schema.Type == nil {
		return tstype.Record{}, nil
	}

	switch *schema.Type {
	case "integer", "number":
		return tstype.Number, nil
	case "string":
		return stringType(schema), nil
	case "boolean":
		return tstype.Boolean, nil
	case "array":
		if schema.Items == nil {
			return tstype.Any, nil
		}
		elem, err := TypeOf(schema.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		return tstype.Array{Elem: elem}, nil
	case "object":
		return objectType(schema)
	default:
		return tstype.Any, nil
	}
}

func stringType(schema *Schema) tstype.Type {
	switch {
	case schema.Enum != nil:
		members := make(tstype.Sum, len(schema.Enum))
		for i, v := range schema.Enum {
			members[i] = tstype.Literal{Value: literal.Str(v)}
		}
		return members
	case schema.GetFormat() == "date-time":
		return tstype.Date
	default:
		return tstype.String
	}
}

func objectType(schema *Schema) (tstype.Type, error) {
	if schema.Properties == nil {
		return tstype.Record{}, nil
	}

	fields := make(tstype.Record, 0, schema.Properties.Len())
	for name, prop := range schema.Properties.All() {
		t, err := TypeOf(prop)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", name, err)
		}
		fields = append(fields, tstype.Field{
			Name:     name,
			Required: schema.IsRequired(name),
			Type:     t,
		})
	}

	return fields, nil
}
