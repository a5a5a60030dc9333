package openapi

import (
	"github.com/speakeasy-api/openapi-typegen/references"
	"github.com/speakeasy-api/openapi-typegen/values"
	"github.com/speakeasy-api/openapi-typegen/yml"
	"gopkg.in/yaml.v3"
)

// RefOr is a slot holding either a Reference (Left) or an inline T (Right).
type RefOr[T any] = values.EitherValue[Reference, T]

// Reference is a Reference Object.
type Reference struct {
	// Ref is the reference string.
	Ref references.Reference `yaml:"$ref"`
}

var _ values.Matcher = (*Reference)(nil)

// MatchesNode reports whether node is a mapping with a $ref key.
func (r *Reference) MatchesNode(node *yaml.Node) bool {
	_, _, ok := yml.GetMapElementNodes(node, "$ref")
	return ok
}

// GetRef returns the reference string. Returns empty string if not set.
func (r *Reference) GetRef() references.Reference {
	if r == nil {
		return ""
	}
	return r.Ref
}
