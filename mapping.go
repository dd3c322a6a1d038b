package seqkit

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Mapping associates unique keys with values under an [Ordering].
// When a key is written twice the last value wins; with InsertionOrder the
// key keeps the position of its first write.
type Mapping[K comparable, V any] struct {
	ordering Ordering
	values   map[K]V
	keys     []K
	compare  func(a, b K) int
}

func newMapping[K comparable, V any](ordering Ordering, compare func(a, b K) int, pairs []Pair[K, V]) Mapping[K, V] {
	m := Mapping[K, V]{
		ordering: ordering,
		values:   make(map[K]V, len(pairs)),
		compare:  compare,
	}
	for _, p := range pairs {
		m.put(p.First, p.Second)
	}
	return m
}

// MappingOf returns a Mapping iterating in first-insertion order.
func MappingOf[K comparable, V any](pairs ...Pair[K, V]) Mapping[K, V] {
	return newMapping(InsertionOrder, nil, pairs)
}

// UnorderedMappingOf returns a Mapping whose iteration order is unspecified.
func UnorderedMappingOf[K comparable, V any](pairs ...Pair[K, V]) Mapping[K, V] {
	return newMapping(Unordered, nil, pairs)
}

// OrderedMappingOf returns a Mapping that preserves construction order.
// It behaves exactly like MappingOf; use it where deterministic iteration
// is part of the caller's contract and should read that way.
func OrderedMappingOf[K comparable, V any](pairs ...Pair[K, V]) Mapping[K, V] {
	return newMapping(InsertionOrder, nil, pairs)
}

// SortedMappingOf returns a Mapping iterating in ascending key order.
func SortedMappingOf[K cmp.Ordered, V any](pairs ...Pair[K, V]) Mapping[K, V] {
	return newMapping(SortedOrder, cmp.Compare[K], pairs)
}

// SortedMappingFunc returns a Mapping iterating in the key order defined by compare.
func SortedMappingFunc[K comparable, V any](compare func(a, b K) int, pairs ...Pair[K, V]) Mapping[K, V] {
	return newMapping(SortedOrder, compare, pairs)
}

// MappingOfOrdering returns a Mapping with an ordering chosen at runtime.
func MappingOfOrdering[K cmp.Ordered, V any](ordering Ordering, pairs ...Pair[K, V]) Mapping[K, V] {
	return newMapping(ordering, cmp.Compare[K], pairs)
}

func (m *Mapping[K, V]) put(k K, v V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	switch m.ordering {
	case SortedOrder:
		i, found := slices.BinarySearchFunc(m.keys, k, m.compare)
		if found {
			m.values[m.keys[i]] = v
			return
		}
		m.keys = slices.Insert(m.keys, i, k)
	case InsertionOrder:
		if _, ok := m.values[k]; !ok {
			m.keys = append(m.keys, k)
		}
	}
	m.values[k] = v
}

func (m *Mapping[K, V]) remove(k K) bool {
	k, ok := m.canonical(k)
	if !ok {
		return false
	}
	delete(m.values, k)
	if m.ordering != Unordered {
		i := slices.Index(m.keys, k)
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// canonical resolves k to the stored key; sorted mappings match keys
// through their comparator.
func (m Mapping[K, V]) canonical(k K) (K, bool) {
	if m.ordering == SortedOrder {
		i, found := slices.BinarySearchFunc(m.keys, k, m.compare)
		if !found {
			return k, false
		}
		return m.keys[i], true
	}
	_, ok := m.values[k]
	return k, ok
}

// Ordering reports the iteration discipline chosen at construction.
func (m Mapping[K, V]) Ordering() Ordering {
	return m.ordering
}

// Len returns the number of keys.
func (m Mapping[K, V]) Len() int {
	return len(m.values)
}

// Get returns the value stored at k.
func (m Mapping[K, V]) Get(k K) (V, bool) {
	k, ok := m.canonical(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[k], true
}

// ContainsKey reports whether k is present.
func (m Mapping[K, V]) ContainsKey(k K) bool {
	_, ok := m.canonical(k)
	return ok
}

// All iterates key/value pairs in the mapping's ordering. The key order is
// captured when All is called; keys removed before they are reached are
// skipped.
func (m Mapping[K, V]) All() iter.Seq2[K, V] {
	if m.ordering == Unordered {
		return maps.All(m.values)
	}
	keys := slices.Clone(m.keys)
	return func(yield func(K, V) bool) {
		for _, k := range keys {
			v, ok := m.values[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// ForEach calls fn for every entry in iteration order.
func (m Mapping[K, V]) ForEach(fn func(K, V)) {
	for k, v := range m.All() {
		fn(k, v)
	}
}

// Keys returns the keys in iteration order.
func (m Mapping[K, V]) Keys() List[K] {
	out := make(List[K], 0, m.Len())
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

// Values returns the values in key iteration order.
func (m Mapping[K, V]) Values() List[V] {
	out := make(List[V], 0, m.Len())
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// Entries returns the key/value pairs in iteration order.
func (m Mapping[K, V]) Entries() List[Pair[K, V]] {
	out := make(List[Pair[K, V]], 0, m.Len())
	for k, v := range m.All() {
		out = append(out, To(k, v))
	}
	return out
}

// String renders the mapping as "{k1=v1, k2=v2}".
func (m Mapping[K, V]) String() string {
	return m.Entries().JoinToStringFunc(func(p Pair[K, V]) string {
		return fmt.Sprintf("%v=%v", p.First, p.Second)
	}, WithPrefix("{"), WithSuffix("}"))
}

func (m Mapping[K, V]) clone() Mapping[K, V] {
	return Mapping[K, V]{
		ordering: m.ordering,
		values:   maps.Clone(m.values),
		keys:     slices.Clone(m.keys),
		compare:  m.compare,
	}
}

// MutableMapping is a Mapping its owner can write to. Use ToMapping to hand
// out an immutable copy.
type MutableMapping[K comparable, V any] struct {
	mapping Mapping[K, V]
}

// NewMutableMapping returns an empty MutableMapping with the given ordering.
func NewMutableMapping[K cmp.Ordered, V any](ordering Ordering) *MutableMapping[K, V] {
	return &MutableMapping[K, V]{mapping: newMapping[K, V](ordering, cmp.Compare[K], nil)}
}

// MutableMappingOf returns an insertion-ordered MutableMapping seeded with pairs.
func MutableMappingOf[K comparable, V any](pairs ...Pair[K, V]) *MutableMapping[K, V] {
	return &MutableMapping[K, V]{mapping: newMapping(InsertionOrder, nil, pairs)}
}

// Put stores v at k, replacing any previous value.
func (m *MutableMapping[K, V]) Put(k K, v V) {
	m.mapping.put(k, v)
}

// Remove deletes k and reports whether it was present.
func (m *MutableMapping[K, V]) Remove(k K) bool {
	return m.mapping.remove(k)
}

func (m *MutableMapping[K, V]) Ordering() Ordering {
	return m.mapping.Ordering()
}

func (m *MutableMapping[K, V]) Len() int {
	return m.mapping.Len()
}

func (m *MutableMapping[K, V]) Get(k K) (V, bool) {
	return m.mapping.Get(k)
}

func (m *MutableMapping[K, V]) ContainsKey(k K) bool {
	return m.mapping.ContainsKey(k)
}

// All iterates the current entries. It is safe to call Remove while
// ranging over it.
func (m *MutableMapping[K, V]) All() iter.Seq2[K, V] {
	return m.mapping.All()
}

func (m *MutableMapping[K, V]) ForEach(fn func(K, V)) {
	m.mapping.ForEach(fn)
}

func (m *MutableMapping[K, V]) Keys() List[K] {
	return m.mapping.Keys()
}

func (m *MutableMapping[K, V]) Values() List[V] {
	return m.mapping.Values()
}

func (m *MutableMapping[K, V]) Entries() List[Pair[K, V]] {
	return m.mapping.Entries()
}

func (m *MutableMapping[K, V]) String() string {
	return m.mapping.String()
}

// ToMapping returns an immutable copy of the current entries.
func (m *MutableMapping[K, V]) ToMapping() Mapping[K, V] {
	return m.mapping.clone()
}
