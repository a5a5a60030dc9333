package openapi

import (
	"context"
	"fmt"
	"io"

	_ "embed"

	"github.com/speakeasy-api/openapi-typegen/errors"
	"github.com/speakeasy-api/openapi-typegen/jsonschema"
	"github.com/speakeasy-api/openapi-typegen/yml"
	"gopkg.in/yaml.v3"
)

//go:embed shape.json
var shapeJSON string

var shapeValidator = jsonschema.NewValidator("openapi3-shape.json", shapeJSON)

// Unmarshal reads a YAML or JSON OpenAPI 3.0 document from doc.
// See UnmarshalNode for the meaning of the returned values.
func Unmarshal(ctx context.Context, doc io.Reader) (*OpenAPI, []error, error) {
	data, err := io.ReadAll(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return UnmarshalNode(ctx, &node)
}

// UnmarshalNode decodes a parsed document. A node that is not shaped like an OpenAPI 3.0
// document yields validation errors and a nil document; an error is only returned when
// decoding itself fails.
func UnmarshalNode(ctx context.Context, node *yaml.Node) (*OpenAPI, []error, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if root := yml.Root(node); root == nil || root.Kind == 0 {
		return nil, nil, errors.New("empty document")
	}

	if validationErrs := shapeValidator.Validate(node); len(validationErrs) > 0 {
		return nil, validationErrs, nil
	}

	var doc OpenAPI
	if err := node.Decode(&doc); err != nil {
		return nil, nil, err
	}

	return &doc, nil, nil
}
