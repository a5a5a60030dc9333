// Package tstype is the structural type representation shared by the Swagger 2.0 and
// OpenAPI 3.0 translators, and its rendering as TypeScript type syntax.
//
// A Type is one of Array, Product, Sum, Named, Record or Literal. Named types are never
// resolved: a Named is rendered verbatim and it is up to the consumer of the generated output
// to declare it.
package tstype

import (
	"strings"

	"github.com/speakeasy-api/openapi-typegen/literal"
)

// Type is a structural type.
type Type interface {
	// String renders the type as TypeScript type syntax.
	String() string
	isType()
}

// Array is a homogeneous sequence of Elem.
type Array struct {
	Elem Type
}

// Product is the intersection of its members (allOf).
type Product []Type

// Sum is the union of its members (enums as literal unions).
type Sum []Type

// Named references a type declared elsewhere by its identifier.
type Named string

// Record is an inline object type. Field names are unique and kept in document order.
type Record []Field

// Field is a single member of a Record.
type Field struct {
	Name     string
	Required bool
	Type     Type
}

// Literal is the type inhabited by exactly one literal value.
type Literal struct {
	Value literal.Value
}

// Common named types produced by the translators.
const (
	Any     Named = "any"
	Unknown Named = "unknown"
	Number  Named = "number"
	String  Named = "string"
	Boolean Named = "boolean"
	Date    Named = "Date"
)

var (
	_ Type = Array{}
	_ Type = Product(nil)
	_ Type = Sum(nil)
	_ Type = Named("")
	_ Type = Record(nil)
	_ Type = Literal{}
)

func (Array) isType()   {}
func (Product) isType() {}
func (Sum) isType()     {}
func (Named) isType()   {}
func (Record) isType()  {}
func (Literal) isType() {}

func (a Array) String() string {
	switch a.Elem.(type) {
	case Sum, Product:
		return "(" + a.Elem.String() + ")[]"
	default:
		return a.Elem.String() + "[]"
	}
}

func (p Product) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		if _, ok := t.(Sum); ok && len(p) > 1 {
			parts[i] = "(" + t.String() + ")"
			continue
		}
		parts[i] = t.String()
	}
	return strings.Join(parts, " & ")
}

func (s Sum) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return strings.Join(parts, "|")
}

func (n Named) String() string {
	return string(n)
}

func (r Record) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for _, f := range r {
		sb.WriteString(f.String())
		sb.WriteByte(';')
	}
	sb.WriteByte('}')
	return sb.String()
}

func (f Field) String() string {
	optional := ""
	if !f.Required {
		optional = " ?"
	}
	return `"` + nameReplacer.Replace(f.Name) + `"` + optional + " : " + f.Type.String()
}

var nameReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

func (l Literal) String() string {
	if l.Value == nil {
		return literal.Null{}.String()
	}
	return l.Value.String()
}

// Declaration is a named top level type alias.
type Declaration struct {
	Name string
	Type Type
}

func (d Declaration) String() string {
	return "export type " + d.Name + " = " + d.Type.String() + ";"
}
