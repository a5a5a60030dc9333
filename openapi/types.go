package openapi

import (
	"fmt"

	"github.com/speakeasy-api/openapi-typegen/errors"
	"github.com/speakeasy-api/openapi-typegen/literal"
	"github.com/speakeasy-api/openapi-typegen/references"
	"github.com/speakeasy-api/openapi-typegen/tstype"
)

// Declarations lowers every entry of components.schemas, in document order. An entry that is
// itself a $ref becomes an alias of the referenced name.
func (o *OpenAPI) Declarations() ([]tstype.Declaration, error) {
	schemas := o.GetComponents().GetSchemas()
	if schemas == nil {
		return nil, nil
	}

	decls := make([]tstype.Declaration, 0, schemas.Len())
	for name, schema := range schemas.All() {
		t, err := TypeOf(schema)
		if err != nil {
			return nil, fmt.Errorf("components.schemas.%s: %w", name, err)
		}
		decls = append(decls, tstype.Declaration{Name: name, Type: t})
	}

	return decls, nil
}

// TypeOf lowers a reference or inline schema to a type.
func TypeOf(schema *RefOr[Schema]) (tstype.Type, error) {
	if schema == nil {
		return tstype.Any, nil
	}

	if schema.IsLeft() {
		name, err := schema.GetLeft().GetRef().LocalName(references.ComponentSchemasPrefix)
		if err != nil {
			return nil, err
		}
		return tstype.Named(name), nil
	}

	return schemaType(schema.GetRight())
}

func schemaType(schema *Schema) (tstype.Type, error) {
	if schema == nil {
		return tstype.Any, nil
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
		return tstype.Any, nil
	}

	switch typ := *schema.Type; typ {
	case "integer", "number":
		return tstype.Number, nil
	case "boolean":
		return tstype.Boolean, nil
	case "unknown":
		return tstype.Unknown, nil
	case "string":
		if schema.Enum != nil {
			return enumType(schema)
		}
		switch schema.GetFormat() {
		case "date", "date-time":
			return tstype.Date, nil
		default:
			return tstype.String, nil
		}
	case "enum":
		return enumType(schema)
	case "array":
		if schema.Items == nil {
			return nil, errors.ErrUnsupportedSchemaShape.Wrapf("array schema has no items")
		}
		elem, err := TypeOf(schema.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		return tstype.Array{Elem: elem}, nil
	case "object":
		return objectType(schema)
	default:
		return nil, errors.ErrUnsupportedSchemaShape.Wrapf("unknown type %q", typ)
	}
}

func enumType(schema *Schema) (tstype.Type, error) {
	members := make(tstype.Sum, len(schema.Enum))
	for i := range schema.Enum {
		v, err := literal.FromNode(&schema.Enum[i])
		if err != nil {
			return nil, fmt.Errorf("enum[%d]: %w", i, err)
		}
		members[i] = tstype.Literal{Value: v}
	}
	return members, nil
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
