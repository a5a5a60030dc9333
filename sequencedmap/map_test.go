package sequencedmap_test

import (
	"slices"
	"testing"

	"github.com/speakeasy-api/openapi-typegen/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMap_Set_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("c", 3),
		sequencedmap.NewElem("a", 1),
	)
	m.Set("b", 2)
	m.Set("c", 30)

	assert.Equal(t, []string{"c", "a", "b"}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{30, 1, 2}, slices.Collect(m.Values()))
	assert.Equal(t, 3, m.Len())
}

func TestMap_NilSafe(t *testing.T) {
	t.Parallel()

	var m *sequencedmap.Map[string, int]

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Equal(t, 0, m.GetOrZero("a"))
	assert.Empty(t, slices.Collect(m.Keys()))
}

func TestMap_ZeroValueSet(t *testing.T) {
	t.Parallel()

	var m sequencedmap.Map[string, string]
	m.Set("k", "v")

	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMap_UnmarshalYAML_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		yamlData     string
		expectedKeys []string
		expected     map[string]int
	}{
		{
			name:         "document order is kept",
			yamlData:     "zeta: 1\nalpha: 2\nmid: 3",
			expectedKeys: []string{"zeta", "alpha", "mid"},
			expected:     map[string]int{"zeta": 1, "alpha": 2, "mid": 3},
		},
		{
			name:         "empty mapping",
			yamlData:     "{}",
			expectedKeys: nil,
			expected:     map[string]int{},
		},
		{
			name:         "duplicate key keeps first position and last value",
			yamlData:     "a: 1\nb: 2\na: 3",
			expectedKeys: []string{"a", "b"},
			expected:     map[string]int{"a": 3, "b": 2},
		},
		{
			name:         "json input",
			yamlData:     `{"b": 1, "a": 2}`,
			expectedKeys: []string{"b", "a"},
			expected:     map[string]int{"b": 1, "a": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := sequencedmap.New[string, int]()
			require.NoError(t, yaml.Unmarshal([]byte(tt.yamlData), m))

			assert.Equal(t, tt.expectedKeys, slices.Collect(m.Keys()))
			for key, expectedValue := range tt.expected {
				actual, found := m.Get(key)
				assert.True(t, found, "key %s should be found", key)
				assert.Equal(t, expectedValue, actual, "value for key %s should match", key)
			}
		})
	}
}

func TestMap_UnmarshalYAML_AsStructField(t *testing.T) {
	t.Parallel()

	type holder struct {
		Items *sequencedmap.Map[string, []string] `yaml:"items"`
	}

	var h holder
	require.NoError(t, yaml.Unmarshal([]byte("items:\n  second: [x]\n  first: [y, z]\n"), &h))
	require.NotNil(t, h.Items)
	assert.Equal(t, []string{"second", "first"}, slices.Collect(h.Items.Keys()))
	assert.Equal(t, []string{"y", "z"}, h.Items.GetOrZero("first"))
}

func TestMap_UnmarshalYAML_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yamlData string
	}{
		{name: "sequence", yamlData: "- a\n- b"},
		{name: "scalar", yamlData: "hello"},
		{name: "wrong value type", yamlData: "a: [1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := sequencedmap.New[string, int]()
			err := yaml.Unmarshal([]byte(tt.yamlData), m)
			require.Error(t, err)
		})
	}
}
