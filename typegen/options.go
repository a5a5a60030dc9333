package typegen

import (
	"fmt"
	"strings"
)

// DefaultBanner is the comment line written above the generated declarations.
const DefaultBanner = "// This file was generated using openapi-typegen"

// JSONPathMode selects the JSONPath implementation used to evaluate Options.ExcludeQuery.
type JSONPathMode string

const (
	// JSONPathRFC9535 evaluates queries as RFC 9535 JSONPath. It is the default.
	JSONPathRFC9535 JSONPathMode = "rfc9535"
	// JSONPathLegacy evaluates queries with the yaml-jsonpath dialect.
	JSONPathLegacy JSONPathMode = "legacy"
)

// ParseJSONPathMode parses a mode name. The empty string selects JSONPathRFC9535.
func ParseJSONPathMode(s string) (JSONPathMode, error) {
	switch JSONPathMode(strings.ToLower(s)) {
	case "", JSONPathRFC9535:
		return JSONPathRFC9535, nil
	case JSONPathLegacy:
		return JSONPathLegacy, nil
	default:
		return "", fmt.Errorf("unknown jsonpath mode %q, expected %s or %s", s, JSONPathRFC9535, JSONPathLegacy)
	}
}

// Options controls how declarations are filtered and rendered.
type Options struct {
	// SkipEmptyTypes drops every composite type left without members, and declarations that
	// end up empty.
	SkipEmptyTypes bool
	// ExcludedTypeNames removes the declarations with these names and every reference to them.
	// Composites emptied by the removal are dropped.
	ExcludedTypeNames []string
	// ExcludeQuery is a JSONPath expression evaluated against the document. Every top level
	// schema it selects is excluded as if its name were listed in ExcludedTypeNames.
	ExcludeQuery string
	// JSONPathMode selects the JSONPath implementation for ExcludeQuery.
	JSONPathMode JSONPathMode
	// Sort orders declarations and record fields by name instead of document order.
	Sort bool
	// Banner replaces DefaultBanner when set.
	Banner string
}

func (o Options) banner() string {
	if o.Banner == "" {
		return DefaultBanner
	}
	return o.Banner
}
