// Package sequencedmap provides a map implementation that maintains the order of keys as they are added.
package sequencedmap

import (
	"fmt"
	"iter"

	"github.com/speakeasy-api/openapi-typegen/yml"
	"gopkg.in/yaml.v3"
)

// Element is a key-value pair that is stored in a sequenced map.
type Element[K comparable, V any] struct {
	Key   K
	Value V
}

// NewElem creates a new element with the specified key and value.
func NewElem[K comparable, V any](key K, value V) *Element[K, V] {
	return &Element[K, V]{
		Key:   key,
		Value: value,
	}
}

// Map is a map implementation that maintains the order of keys as they are added.
type Map[K comparable, V any] struct {
	m map[K]*Element[K, V]
	l []*Element[K, V]
}

var _ yaml.Unmarshaler = (*Map[string, any])(nil)

// New creates a new map with the specified elements.
func New[K comparable, V any](elements ...*Element[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		m: make(map[K]*Element[K, V], len(elements)),
		l: make([]*Element[K, V], 0, len(elements)),
	}
	for _, e := range elements {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Init initializes the underlying storage of a zero value Map.
func (m *Map[K, V]) Init() {
	if m.m == nil {
		m.m = make(map[K]*Element[K, V])
	}
}

// Len returns the number of elements in the map. nil safe.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.l)
}

// Set sets the value for the specified key. Setting an existing key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	m.Init()

	if element, ok := m.m[key]; ok {
		element.Value = value
		return
	}

	element := NewElem(key, value)
	m.m[key] = element
	m.l = append(m.l, element)
}

// Get returns the value for the specified key and a boolean indicating whether the key was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}

	element, ok := m.m[key]
	if !ok {
		return zero, false
	}

	return element.Value, true
}

// GetOrZero returns the value for the specified key or the zero value if the key is not found.
func (m *Map[K, V]) GetOrZero(key K) V {
	v, _ := m.Get(key)
	return v
}

// Has returns a boolean indicating whether the map contains the specified key.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// All returns an iterator that iterates over all elements in the map, in the order they were added.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}

		for _, element := range m.l {
			if !yield(element.Key, element.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator that iterates over all keys in the map, in the order they were added.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator that iterates over all values in the map, in the order they were added.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// UnmarshalYAML decodes a YAML mapping, keeping document order. Duplicate keys keep the
// position of their first occurrence and the value of their last.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	resolved := yml.ResolveAlias(node)
	if resolved == nil {
		return nil
	}

	switch {
	case resolved.Kind == yaml.MappingNode:
	case resolved.Kind == yaml.ScalarNode && resolved.Tag == "!!null":
		return nil
	default:
		return fmt.Errorf("line %d: expected a mapping, got %s", resolved.Line, yml.NodeKindToString(resolved.Kind))
	}

	m.Init()

	for keyNode, valueNode := range yml.MapPairs(resolved) {
		var key K
		if err := keyNode.Decode(&key); err != nil {
			return err
		}

		var value V
		if err := yml.ResolveAlias(valueNode).Decode(&value); err != nil {
			return err
		}

		m.Set(key, value)
	}

	return nil
}
