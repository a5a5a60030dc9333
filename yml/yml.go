// Package yml contains helpers for navigating gopkg.in/yaml.v3 node trees.
package yml

import (
	"iter"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ResolveAlias follows alias nodes until it reaches a concrete node.
func ResolveAlias(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.AliasNode:
		return ResolveAlias(node.Alias)
	default:
		return node
	}
}

// Root returns the top level content node of a document node. Any other node is returned as is.
func Root(node *yaml.Node) *yaml.Node {
	node = ResolveAlias(node)
	if node != nil && node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		return ResolveAlias(node.Content[0])
	}
	return node
}

// MapPairs iterates over the key and value nodes of a mapping node in document order.
// Aliases on the mapping itself and on each key are resolved; values are yielded as found.
func MapPairs(mapNode *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		resolved := ResolveAlias(mapNode)
		if resolved == nil || resolved.Kind != yaml.MappingNode {
			return
		}

		for i := 0; i+1 < len(resolved.Content); i += 2 {
			keyNode := ResolveAlias(resolved.Content[i])
			if !yield(keyNode, resolved.Content[i+1]) {
				return
			}
		}
	}
}

// GetMapElementNodes returns the key and value nodes stored under key in a mapping node.
func GetMapElementNodes(mapNode *yaml.Node, key string) (*yaml.Node, *yaml.Node, bool) {
	for keyNode, valueNode := range MapPairs(mapNode) {
		if keyNode != nil && keyNode.Value == key {
			return keyNode, valueNode, true
		}
	}

	return nil, nil, false
}

// GetMapElement returns the resolved value node stored under key in a mapping node, or nil.
func GetMapElement(mapNode *yaml.Node, key string) *yaml.Node {
	_, valueNode, ok := GetMapElementNodes(mapNode, key)
	if !ok {
		return nil
	}
	return ResolveAlias(valueNode)
}

// GetPath walks a chain of mapping keys starting at node, returning nil if any step is missing.
func GetPath(node *yaml.Node, keys ...string) *yaml.Node {
	current := Root(node)
	for _, key := range keys {
		current = GetMapElement(current, key)
		if current == nil {
			return nil
		}
	}
	return current
}

// Locate follows JSON pointer style tokens from node through mappings (by key) and sequences
// (by index). It returns the deepest node reached, so a token that cannot be followed yields
// its parent.
func Locate(node *yaml.Node, tokens ...string) *yaml.Node {
	current := Root(node)
	for _, token := range tokens {
		var next *yaml.Node
		switch {
		case current == nil:
			return nil
		case current.Kind == yaml.MappingNode:
			next = GetMapElement(current, token)
		case current.Kind == yaml.SequenceNode:
			if i, err := strconv.Atoi(token); err == nil && i >= 0 && i < len(current.Content) {
				next = ResolveAlias(current.Content[i])
			}
		}
		if next == nil {
			return current
		}
		current = next
	}
	return current
}
