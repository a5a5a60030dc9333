// Package typegen turns Swagger 2.0 and OpenAPI 3.0 documents into TypeScript type aliases.
//
// A document is matched against the Swagger 2.0 shape first and the OpenAPI 3.0 shape second;
// the first shape that matches decides which translator lowers its schemas.
package typegen

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/openapi-typegen/errors"
	"github.com/speakeasy-api/openapi-typegen/openapi"
	"github.com/speakeasy-api/openapi-typegen/swagger"
	"github.com/speakeasy-api/openapi-typegen/tstype"
	"github.com/speakeasy-api/openapi-typegen/yml"
	"gopkg.in/yaml.v3"
)

// Dialect identifies the grammar a document declares its types in.
type Dialect string

const (
	DialectSwagger2 Dialect = "swagger2"
	DialectOpenAPI3 Dialect = "openapi3"
)

// Document is a parsed Swagger 2.0 or OpenAPI 3.0 document. Exactly one of Swagger and OpenAPI
// is set.
type Document struct {
	Swagger *swagger.Swagger
	OpenAPI *openapi.OpenAPI

	root *yaml.Node
}

// Parse decodes a YAML or JSON document and matches it against the supported dialects.
// If neither dialect matches, the error is errors.ErrDeserialization wrapping the reason each
// dialect was rejected.
func Parse(ctx context.Context, data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.ErrDeserialization.Wrap(fmt.Errorf("failed to parse document: %w", err))
	}

	return ParseNode(ctx, &root)
}

// ParseNode matches an already parsed document against the supported dialects.
func ParseNode(ctx context.Context, root *yaml.Node) (*Document, error) {
	sw, swErrs, err := swagger.UnmarshalNode(ctx, root)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err == nil && len(swErrs) == 0 {
		return &Document{Swagger: sw, root: root}, nil
	}
	swCause := rejection("swagger "+swagger.Version, err, swErrs)

	oa, oaErrs, err := openapi.UnmarshalNode(ctx, root)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err == nil && len(oaErrs) == 0 {
		return &Document{OpenAPI: oa, root: root}, nil
	}
	oaCause := rejection("openapi 3.0", err, oaErrs)

	return nil, errors.ErrDeserialization.Wrap(errors.Join(swCause, oaCause))
}

func rejection(dialect string, err error, validationErrs []error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", dialect, err)
	}
	return fmt.Errorf("%s: %w", dialect, errors.Join(validationErrs...))
}

// Dialect reports which dialect the document matched.
func (d *Document) Dialect() Dialect {
	if d.Swagger != nil {
		return DialectSwagger2
	}
	return DialectOpenAPI3
}

// Version returns the version string the document declares, for example "2.0" or "3.0.3".
func (d *Document) Version() string {
	if d.Swagger != nil {
		return d.Swagger.GetSwagger()
	}
	return d.OpenAPI.GetOpenAPI()
}

// Title returns the title from the document's info object.
func (d *Document) Title() string {
	if d.Swagger != nil {
		return d.Swagger.GetInfo().GetTitle()
	}
	return d.OpenAPI.GetInfo().GetTitle()
}

// Declarations lowers the document's schemas with the translator of its dialect.
func (d *Document) Declarations() ([]tstype.Declaration, error) {
	if d.Swagger != nil {
		return d.Swagger.Declarations()
	}
	return d.OpenAPI.Declarations()
}

// Operations returns the number of operations the document declares. Swagger 2.0 paths are
// not modelled and always count as zero.
func (d *Document) Operations() int {
	if d.OpenAPI == nil {
		return 0
	}

	count := 0
	for range d.OpenAPI.Operations() {
		count++
	}
	return count
}

// schemaNodes returns the YAML node of every top level schema, keyed by name.
func (d *Document) schemaNodes() map[*yaml.Node]string {
	var path []string
	if d.Swagger != nil {
		path = []string{"definitions"}
	} else {
		path = []string{"components", "schemas"}
	}

	nodes := map[*yaml.Node]string{}
	for keyNode, valueNode := range yml.MapPairs(yml.GetPath(d.root, path...)) {
		nodes[valueNode] = keyNode.Value
		nodes[yml.ResolveAlias(valueNode)] = keyNode.Value
	}
	return nodes
}
