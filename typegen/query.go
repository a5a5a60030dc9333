package typegen

import (
	"fmt"

	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath/config"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

// Queryable selects nodes of a YAML document.
type Queryable interface {
	Query(root *yaml.Node) ([]*yaml.Node, error)
}

type rfcJSONPathQueryable struct {
	path *jsonpath.JSONPath
}

func (r rfcJSONPathQueryable) Query(root *yaml.Node) ([]*yaml.Node, error) {
	return r.path.Query(root), nil
}

type yamlPathQueryable struct {
	path *yamlpath.Path
}

func (y yamlPathQueryable) Query(root *yaml.Node) ([]*yaml.Node, error) {
	return y.path.Find(root)
}

// NewQuery compiles a JSONPath expression with the implementation selected by mode.
func NewQuery(expr string, mode JSONPathMode) (Queryable, error) {
	switch mode {
	case "", JSONPathRFC9535:
		path, err := jsonpath.NewPath(expr, config.WithPropertyNameExtension())
		if err != nil {
			return nil, fmt.Errorf("invalid rfc9535 jsonpath %s: %w", expr, err)
		}
		return rfcJSONPathQueryable{path: path}, nil
	case JSONPathLegacy:
		path, err := yamlpath.NewPath(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid jsonpath %s: %w", expr, err)
		}
		return yamlPathQueryable{path: path}, nil
	default:
		return nil, fmt.Errorf("unknown jsonpath mode %q", mode)
	}
}

// SelectSchemas returns the names of the top level schemas that expr selects, in no particular
// order. Nodes selected below or outside the schema maps are ignored.
func (d *Document) SelectSchemas(expr string, mode JSONPathMode) ([]string, error) {
	query, err := NewQuery(expr, mode)
	if err != nil {
		return nil, err
	}

	selected, err := query.Query(d.root)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate jsonpath %s: %w", expr, err)
	}

	schemas := d.schemaNodes()
	seen := map[string]bool{}
	names := []string{}
	for _, node := range selected {
		name, ok := schemas[node]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names, nil
}
