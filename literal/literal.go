// Package literal models the literal values that can appear in a schema document, such as
// enum members, and renders them as TypeScript literal syntax.
package literal

import (
	"math"
	"strconv"
	"strings"
)

// Value is a literal value. It is one of Null, Str, Bool, Num, List or Map.
type Value interface {
	// String renders the value as a TypeScript literal.
	String() string
	isValue()
}

// Null is the null literal.
type Null struct{}

// Str is a string literal.
type Str string

// Bool is a boolean literal.
type Bool bool

// Num is a numeric literal.
type Num float64

// List is an array literal.
type List []Value

// Map is an object literal. Entries keep their document order.
type Map []Entry

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   Value
	Value Value
}

var (
	_ Value = Null{}
	_ Value = Str("")
	_ Value = Bool(false)
	_ Value = Num(0)
	_ Value = List(nil)
	_ Value = Map(nil)
)

func (Null) isValue() {}
func (Str) isValue()  {}
func (Bool) isValue() {}
func (Num) isValue()  {}
func (List) isValue() {}
func (Map) isValue()  {}

func (Null) String() string {
	return "null"
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

func (s Str) String() string {
	return "'" + quoteReplacer.Replace(string(s)) + "'"
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (n Num) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (m Map) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Key.String())
		sb.WriteString(": ")
		sb.WriteString(e.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
