package swagger

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

var shapeValidator = jsonschema.NewValidator("swagger2-shape.json", shapeJSON)

// Unmarshal reads a YAML or JSON Swagger 2.0 document from doc.
// See UnmarshalNode for the meaning of the returned values.
func Unmarshal(ctx context.Context, doc io.Reader) (*Swagger, []error, error) {
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

// UnmarshalNode decodes a parsed document. Documents that do not have the shape of a Swagger 2.0
// document are reported as validation errors and no document is returned. Decoding failures
// are returned as an error.
func UnmarshalNode(ctx context.Context, node *yaml.Node) (*Swagger, []error, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if root := yml.Root(node); root == nil || root.Kind == 0 {
		return nil, nil, errors.New("empty document")
	}

	if validationErrs := shapeValidator.Validate(node); len(validationErrs) > 0 {
		return nil, validationErrs, nil
	}

	var swagger Swagger
	if err := node.Decode(&swagger); err != nil {
		return nil, nil, err
	}

	return &swagger, nil, nil
}
