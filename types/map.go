package types

import (
	"sort"
	"strings"
)

// Map is a shared-ownership mapping from Key to Value. Insertion order is
// not semantically observable; keys are unique by Key equality (spec §3).
// Adapted from the teacher's types.MapValue/goMap, dropping the
// case-insensitive string-key handling and the ObjValue/ErrValue key
// kinds that only existed for MOO's object system.
type Map struct {
	order []Key
	pairs map[Key]Value
}

// MapPair is a key/value pair used to build a Map literal.
type MapPair struct {
	Key Key
	Val Value
}

// NewMap builds a Map from pairs in the order given (e.g. AST map-literal
// evaluation order). A duplicate key takes the later pair's value, per
// spec §4.5 and Testable Property 7.
func NewMap(pairs []MapPair) Map {
	m := Map{pairs: make(map[Key]Value, len(pairs))}
	for _, p := range pairs {
		if _, exists := m.pairs[p.Key]; !exists {
			m.order = append(m.order, p.Key)
		}
		m.pairs[p.Key] = p.Val
	}
	return m
}

// NewEmptyMap returns a Map with no entries.
func NewEmptyMap() Map {
	return Map{pairs: make(map[Key]Value)}
}

func (m Map) Kind() Kind { return KindMap }

func (m Map) String() string {
	if len(m.order) == 0 {
		return "{}"
	}
	keys := make([]Key, len(m.order))
	copy(keys, m.order)
	sort.Slice(keys, func(i, j int) bool { return Compare(keys[i], keys[j]) < 0 })

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.Value().String() + ": " + m.pairs[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m Map) Truthy() bool { return m.Len() > 0 }

// Equal compares by key-set and value equality, order insensitive
// (spec §4.2).
func (m Map) Equal(other Value) bool {
	o, ok := other.(Map)
	if !ok || len(m.pairs) != len(o.pairs) {
		return false
	}
	for k, v := range m.pairs {
		ov, exists := o.pairs[k]
		if !exists || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.pairs) }

// Get returns the value bound to key, if any.
func (m Map) Get(key Key) (Value, bool) {
	v, ok := m.pairs[key]
	return v, ok
}

// Has reports key containment, used by the `in` operator (spec §4.2).
func (m Map) Has(key Key) bool {
	_, ok := m.pairs[key]
	return ok
}

// Keys returns the map's keys in insertion order.
func (m Map) Keys() []Key {
	out := make([]Key, len(m.order))
	copy(out, m.order)
	return out
}
