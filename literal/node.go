package literal

import (
	"errors"
	"fmt"

	"github.com/speakeasy-api/openapi-typegen/yml"
	"gopkg.in/yaml.v3"
)

// ErrAliasCycle is returned when an alias refers to a node that contains the alias.
var ErrAliasCycle = errors.New("alias refers to a node that contains it")

// FromNode converts a parsed YAML or JSON value into a literal Value.
//
// Mapping keys become Str of their scalar text, since object keys in the target language are
// always strings. A mapping key that is itself a sequence or mapping is an error.
func FromNode(node *yaml.Node) (Value, error) {
	return fromNode(node, map[*yaml.Node]struct{}{})
}

func fromNode(node *yaml.Node, active map[*yaml.Node]struct{}) (Value, error) {
	node = yml.ResolveAlias(node)
	if node == nil {
		return Null{}, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return fromNode(node.Content[0], active)
	case yaml.ScalarNode:
		return fromScalar(node)
	case yaml.SequenceNode, yaml.MappingNode:
		if _, ok := active[node]; ok {
			return nil, fmt.Errorf("line %d: %w", node.Line, ErrAliasCycle)
		}
		active[node] = struct{}{}
		defer delete(active, node)

		if node.Kind == yaml.SequenceNode {
			return fromSequence(node, active)
		}
		return fromMapping(node, active)
	default:
		return nil, fmt.Errorf("line %d: unsupported %s node", node.Line, yml.NodeKindToString(node.Kind))
	}
}

func fromSequence(node *yaml.Node, active map[*yaml.Node]struct{}) (Value, error) {
	list := make(List, 0, len(node.Content))
	for _, item := range node.Content {
		v, err := fromNode(item, active)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func fromMapping(node *yaml.Node, active map[*yaml.Node]struct{}) (Value, error) {
	m := make(Map, 0, len(node.Content)/2)
	for keyNode, valueNode := range yml.MapPairs(node) {
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: object keys must be scalars, got %s", keyNode.Line, yml.NodeKindToString(keyNode.Kind))
		}
		v, err := fromNode(valueNode, active)
		if err != nil {
			return nil, err
		}
		m = append(m, Entry{Key: Str(keyNode.Value), Value: v})
	}
	return m, nil
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: invalid %s %q: %w", node.Line, yml.NodeTagToString(node.ShortTag()), node.Value, err)
		}
		return Num(f), nil
	default:
		return Str(node.Value), nil
	}
}
