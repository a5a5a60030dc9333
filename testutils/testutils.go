// Package testutils builds yaml.v3 nodes for tests.
package testutils

import (
	"gopkg.in/yaml.v3"
)

// CreateStringYamlNode returns a !!str scalar node.
func CreateStringYamlNode(value string, line, column int) *yaml.Node {
	return CreateScalarYamlNode("!!str", value, line, column)
}

// CreateScalarYamlNode returns a scalar node with an explicit resolved tag such as !!int or !!null.
func CreateScalarYamlNode(tag, value string, line, column int) *yaml.Node {
	return &yaml.Node{
		Value:  value,
		Kind:   yaml.ScalarNode,
		Tag:    tag,
		Line:   line,
		Column: column,
	}
}

// CreateMapYamlNode returns a mapping node; contents alternate key and value nodes.
func CreateMapYamlNode(contents []*yaml.Node, line, column int) *yaml.Node {
	return &yaml.Node{
		Content: contents,
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Line:    line,
		Column:  column,
	}
}

// CreateSeqYamlNode returns a sequence node.
func CreateSeqYamlNode(contents []*yaml.Node, line, column int) *yaml.Node {
	return &yaml.Node{
		Content: contents,
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Line:    line,
		Column:  column,
	}
}

// ParseYamlNode decodes src into a node tree and returns its top level content node.
// It panics on malformed input; callers pass fixed fixtures.
func ParseYamlNode(src string) *yaml.Node {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		panic(err)
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return &doc
}
