package seqkit

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set holds each value at most once. Its iteration order is fixed at
// construction time by an [Ordering].
//
// Sorted sets built with a comparator treat values the comparator reports
// as equal as duplicates, keeping the first one seen.
type Set[T comparable] struct {
	ordering Ordering
	members  map[T]struct{}
	order    []T
	compare  func(a, b T) int
}

func newSet[T comparable](ordering Ordering, compare func(a, b T) int, items []T) Set[T] {
	s := Set[T]{
		ordering: ordering,
		members:  make(map[T]struct{}, len(items)),
		compare:  compare,
	}
	for _, item := range items {
		s.add(item)
	}
	return s
}

// SetOf returns a Set iterating in first-insertion order.
func SetOf[T comparable](items ...T) Set[T] {
	return newSet(InsertionOrder, nil, items)
}

// UnorderedSetOf returns a Set whose iteration order is unspecified.
func UnorderedSetOf[T comparable](items ...T) Set[T] {
	return newSet(Unordered, nil, items)
}

// SortedSetOf returns a Set iterating in ascending natural order.
func SortedSetOf[T cmp.Ordered](items ...T) Set[T] {
	return newSet(SortedOrder, cmp.Compare[T], items)
}

// SortedSetFunc returns a Set iterating in the order defined by compare.
func SortedSetFunc[T comparable](compare func(a, b T) int, items ...T) Set[T] {
	return newSet(SortedOrder, compare, items)
}

// SetOfOrdering returns a Set with an ordering chosen at runtime.
func SetOfOrdering[T cmp.Ordered](ordering Ordering, items ...T) Set[T] {
	return newSet(ordering, cmp.Compare[T], items)
}

func (s *Set[T]) add(v T) bool {
	if s.members == nil {
		s.members = make(map[T]struct{})
	}
	if s.ordering == SortedOrder {
		i, found := slices.BinarySearchFunc(s.order, v, s.compare)
		if found {
			return false
		}
		s.order = slices.Insert(s.order, i, v)
		s.members[v] = struct{}{}
		return true
	}
	if _, ok := s.members[v]; ok {
		return false
	}
	s.members[v] = struct{}{}
	if s.ordering == InsertionOrder {
		s.order = append(s.order, v)
	}
	return true
}

func (s *Set[T]) remove(v T) bool {
	switch s.ordering {
	case SortedOrder:
		i, found := slices.BinarySearchFunc(s.order, v, s.compare)
		if !found {
			return false
		}
		delete(s.members, s.order[i])
		s.order = slices.Delete(s.order, i, i+1)
		return true
	case InsertionOrder:
		if _, ok := s.members[v]; !ok {
			return false
		}
		delete(s.members, v)
		i := slices.Index(s.order, v)
		s.order = slices.Delete(s.order, i, i+1)
		return true
	default:
		if _, ok := s.members[v]; !ok {
			return false
		}
		delete(s.members, v)
		return true
	}
}

// Ordering reports the iteration discipline chosen at construction.
func (s Set[T]) Ordering() Ordering {
	return s.ordering
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s.members)
}

// Contains reports whether v is a member.
func (s Set[T]) Contains(v T) bool {
	if s.ordering == SortedOrder {
		_, found := slices.BinarySearchFunc(s.order, v, s.compare)
		return found
	}
	_, ok := s.members[v]
	return ok
}

// All iterates the members in the set's ordering. The order is captured
// when All is called; members removed before they are reached are skipped.
func (s Set[T]) All() iter.Seq[T] {
	if s.ordering == Unordered {
		return maps.Keys(s.members)
	}
	order := slices.Clone(s.order)
	return func(yield func(T) bool) {
		for _, v := range order {
			if _, ok := s.members[v]; !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ToList copies the members, in iteration order, into a List.
func (s Set[T]) ToList() List[T] {
	out := make(List[T], 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// String renders the set as "[a, b, c]".
func (s Set[T]) String() string {
	return s.ToList().JoinToString(WithPrefix("["), WithSuffix("]"))
}

func (s Set[T]) clone() Set[T] {
	return Set[T]{
		ordering: s.ordering,
		members:  maps.Clone(s.members),
		order:    slices.Clone(s.order),
		compare:  s.compare,
	}
}

// MutableSet is a Set that can be modified in place by its owner. Use
// ToSet to hand out an immutable copy.
type MutableSet[T comparable] struct {
	set Set[T]
}

// NewMutableSet returns an empty MutableSet with the given ordering.
func NewMutableSet[T cmp.Ordered](ordering Ordering) *MutableSet[T] {
	return &MutableSet[T]{set: newSet[T](ordering, cmp.Compare[T], nil)}
}

// NewMutableSetFunc returns an empty sorted MutableSet ordered by compare.
func NewMutableSetFunc[T comparable](compare func(a, b T) int) *MutableSet[T] {
	return &MutableSet[T]{set: newSet[T](SortedOrder, compare, nil)}
}

// MutableSetOf returns an insertion-ordered MutableSet seeded with items.
func MutableSetOf[T comparable](items ...T) *MutableSet[T] {
	return &MutableSet[T]{set: newSet(InsertionOrder, nil, items)}
}

// Add inserts v and reports whether it was not already present.
func (m *MutableSet[T]) Add(v T) bool {
	return m.set.add(v)
}

// Remove deletes v and reports whether it was present.
func (m *MutableSet[T]) Remove(v T) bool {
	return m.set.remove(v)
}

func (m *MutableSet[T]) Ordering() Ordering {
	return m.set.Ordering()
}

func (m *MutableSet[T]) Len() int {
	return m.set.Len()
}

func (m *MutableSet[T]) Contains(v T) bool {
	return m.set.Contains(v)
}

// All iterates the current members. It is safe to call Remove while
// ranging over it.
func (m *MutableSet[T]) All() iter.Seq[T] {
	return m.set.All()
}

func (m *MutableSet[T]) ToList() List[T] {
	return m.set.ToList()
}

func (m *MutableSet[T]) String() string {
	return m.set.String()
}

// ToSet returns an immutable copy of the current members.
func (m *MutableSet[T]) ToSet() Set[T] {
	return m.set.clone()
}
