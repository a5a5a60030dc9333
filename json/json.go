// Package json converts YAML nodes into JSON values and documents.
package json

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"github.com/speakeasy-api/openapi-typegen/errors"
	"github.com/speakeasy-api/openapi-typegen/yml"
	"gopkg.in/yaml.v3"
)

const (
	// ErrAliasCycle is returned when an alias refers to a node that contains the alias.
	ErrAliasCycle errors.Error = "alias refers to a node that contains it"
	// ErrAliasExpansion is returned when expanding aliases would visit far more nodes than the
	// document holds.
	ErrAliasExpansion errors.Error = "document expands too many aliases"
)

// Expanded nodes allowed per node of the parsed document, on top of a fixed allowance.
const (
	expansionRatio     = 10
	expansionAllowance = 10_000
)

// YAMLToJSON will convert the provided YAML node to JSON. Object keys are written in sorted order.
func YAMLToJSON(node *yaml.Node, indentation int, buffer io.Writer) error {
	v, err := ToValue(node)
	if err != nil {
		return err
	}

	e := json.NewEncoder(buffer)
	if indentation > 0 {
		e.SetIndent("", strings.Repeat(" ", indentation))
	}

	return e.Encode(v)
}

// ToValue converts the provided YAML node into the generic JSON data model: map[string]any, []any,
// string, bool, int64, float64 or nil. Aliases and merge keys are expanded. An alias that
// contains itself is ErrAliasCycle, and expansion that grows far beyond the size of the parsed
// tree is ErrAliasExpansion.
func ToValue(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}

	c := &converter{
		active: map[*yaml.Node]struct{}{},
		budget: expansionRatio*countNodes(node) + expansionAllowance,
	}
	return c.handleYAMLNode(node)
}

// countNodes counts the nodes of the parsed tree without following aliases.
func countNodes(node *yaml.Node) int {
	n := 1
	for _, child := range node.Content {
		n += countNodes(child)
	}
	return n
}

type converter struct {
	// active holds the collections currently being converted.
	active map[*yaml.Node]struct{}
	budget int
}

func (c *converter) handleYAMLNode(node *yaml.Node) (any, error) {
	c.budget--
	if c.budget < 0 {
		return nil, ErrAliasExpansion.Wrapf("[%d:%d] expansion limit reached", node.Line, node.Column)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return c.handleYAMLNode(node.Content[0])
	case yaml.SequenceNode, yaml.MappingNode:
		if _, ok := c.active[node]; ok {
			return nil, ErrAliasCycle.Wrapf("[%d:%d] %s", node.Line, node.Column, anchorName(node))
		}
		c.active[node] = struct{}{}
		defer delete(c.active, node)

		if node.Kind == yaml.SequenceNode {
			return c.handleSequenceNode(node)
		}
		return c.handleMappingNode(node)
	case yaml.ScalarNode:
		return handleScalarNode(node)
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, fmt.Errorf("[%d:%d] unresolved alias %s", node.Line, node.Column, node.Value)
		}
		return c.handleYAMLNode(node.Alias)
	default:
		return nil, fmt.Errorf("unknown node kind: %s", yml.NodeKindToString(node.Kind))
	}
}

func anchorName(node *yaml.Node) string {
	if node.Anchor == "" {
		return "anonymous node"
	}
	return "anchor " + node.Anchor
}

func (c *converter) handleMappingNode(node *yaml.Node) (any, error) {
	v := make(map[string]any, len(node.Content)/2)

	for keyNode, valueNode := range yml.MapPairs(node) {
		if keyNode.ShortTag() == "!!merge" {
			if err := c.mergeInto(v, valueNode); err != nil {
				return nil, err
			}
			continue
		}

		key, err := c.keyString(keyNode)
		if err != nil {
			return nil, err
		}

		vv, err := c.handleYAMLNode(valueNode)
		if err != nil {
			return nil, err
		}

		v[key] = vv
	}

	return v, nil
}

// mergeInto applies a `<<` merge value. Keys already present win over merged ones.
func (c *converter) mergeInto(dst map[string]any, valueNode *yaml.Node) error {
	valueNode = yml.ResolveAlias(valueNode)

	sources := []*yaml.Node{valueNode}
	if valueNode.Kind == yaml.SequenceNode {
		sources = valueNode.Content
	}

	for _, src := range sources {
		merged, err := c.handleYAMLNode(src)
		if err != nil {
			return err
		}
		m, ok := merged.(map[string]any)
		if !ok {
			return fmt.Errorf("merge value must be a mapping, got %s", yml.NodeKindToString(yml.ResolveAlias(src).Kind))
		}
		for k, mv := range m {
			if _, exists := dst[k]; !exists {
				dst[k] = mv
			}
		}
	}

	return nil
}

func (c *converter) keyString(keyNode *yaml.Node) (string, error) {
	keyNode = yml.ResolveAlias(keyNode)
	if keyNode.Kind == yaml.ScalarNode {
		return keyNode.Value, nil
	}

	kv, err := c.handleYAMLNode(keyNode)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(kv)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *converter) handleSequenceNode(node *yaml.Node) (any, error) {
	v := make([]any, len(node.Content))
	for i, n := range node.Content {
		vv, err := c.handleYAMLNode(n)
		if err != nil {
			return nil, err
		}

		v[i] = vv
	}

	return v, nil
}

func handleScalarNode(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return i, nil
		}
		fallthrough
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("[%d:%d] %s cannot be represented in JSON", node.Line, node.Column, node.Value)
		}
		return f, nil
	default:
		return node.Value, nil
	}
}
