package tstype

import (
	"cmp"
	"slices"
)

// NameSet is a set of type names.
type NameSet map[string]struct{}

// NewNameSet returns a set holding names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. nil safe.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// PruneEmpty strips empty structure from t. Records, sums and products left without members
// are absent, and absence propagates to the enclosing type. It reports false when t itself is
// absent. An empty Record in the source is pruned like one emptied by filtering.
func PruneEmpty(t Type) (Type, bool) {
	return filter(t, keepLeaf, true)
}

// ExcludeNamed removes every Named type whose name is in excluded. Composites that lose all of
// their members this way are absent; composites that were empty to begin with are kept, so an
// intentional `{}` is only removed by PruneEmpty.
func ExcludeNamed(t Type, excluded NameSet) (Type, bool) {
	return filter(t, func(leaf Type) bool {
		n, ok := leaf.(Named)
		return !ok || !excluded.Has(string(n))
	}, false)
}

func keepLeaf(Type) bool {
	return true
}

// filter rebuilds t bottom-up. keep decides the fate of Named and Literal leaves. A composite
// with no surviving members is absent if it lost members, or always when collapseEmpty is set.
func filter(t Type, keep func(Type) bool, collapseEmpty bool) (Type, bool) {
	absent := func(before, after int) bool {
		return after == 0 && (collapseEmpty || before > 0)
	}

	switch t := t.(type) {
	case nil:
		return nil, false
	case Array:
		elem, ok := filter(t.Elem, keep, collapseEmpty)
		if !ok {
			return nil, false
		}
		return Array{Elem: elem}, true
	case Product:
		members := filterAll(t, keep, collapseEmpty)
		if absent(len(t), len(members)) {
			return nil, false
		}
		return Product(members), true
	case Sum:
		members := filterAll(t, keep, collapseEmpty)
		if absent(len(t), len(members)) {
			return nil, false
		}
		return Sum(members), true
	case Record:
		fields := make(Record, 0, len(t))
		for _, f := range t {
			ft, ok := filter(f.Type, keep, collapseEmpty)
			if !ok {
				continue
			}
			fields = append(fields, Field{Name: f.Name, Required: f.Required, Type: ft})
		}
		if absent(len(t), len(fields)) {
			return nil, false
		}
		return fields, true
	default:
		if !keep(t) {
			return nil, false
		}
		return t, true
	}
}

func filterAll(types []Type, keep func(Type) bool, collapseEmpty bool) []Type {
	out := make([]Type, 0, len(types))
	for _, member := range types {
		if m, ok := filter(member, keep, collapseEmpty); ok {
			out = append(out, m)
		}
	}
	return out
}

// SortFields returns a copy of t with the fields of every Record, at any depth, ordered by name.
func SortFields(t Type) Type {
	switch t := t.(type) {
	case Array:
		return Array{Elem: SortFields(t.Elem)}
	case Product:
		return Product(sortAll(t))
	case Sum:
		return Sum(sortAll(t))
	case Record:
		fields := make(Record, len(t))
		for i, f := range t {
			fields[i] = Field{Name: f.Name, Required: f.Required, Type: SortFields(f.Type)}
		}
		slices.SortStableFunc(fields, func(a, b Field) int {
			return cmp.Compare(a.Name, b.Name)
		})
		return fields
	default:
		return t
	}
}

func sortAll(types []Type) []Type {
	out := make([]Type, len(types))
	for i, member := range types {
		out[i] = SortFields(member)
	}
	return out
}
