package seqkit

import "slices"

// List is an eager, fully materialized sequence. Every method that returns
// a List builds a new one and leaves the receiver untouched, so calls chain:
//
//	seqkit.ListOf("Seoul", "Tokyo", "Mountain View", "NYC").
//	    Filter(func(c string) bool { return len(c) <= 5 }).
//	    Take(2)
type List[T any] []T

// ListOf returns a List holding items in argument order.
func ListOf[T any](items ...T) List[T] {
	out := make(List[T], len(items))
	copy(out, items)
	return out
}

// EmptyList returns a List with no elements (the identity of [List.Plus]).
func EmptyList[T any]() List[T] {
	return List[T]{}
}

// ListOfNotNil keeps the non-nil items, dereferenced, in argument order.
func ListOfNotNil[T any](items ...*T) List[T] {
	out := make(List[T], 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

// OfSize returns n absent slots. A negative n is an [IllegalArgumentError].
func OfSize[T any](n int) (List[*T], error) {
	err := Require(n >= 0, func() string { return "size must be non-negative" })
	if err != nil {
		return nil, err
	}
	return make(List[*T], n), nil
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return len(l)
}

// IsEmpty reports whether l has no elements.
func (l List[T]) IsEmpty() bool {
	return len(l) == 0
}

// Get returns the element at index i, or a [NoSuchElementError] when i is
// out of range.
func (l List[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(l) {
		var zero T
		return zero, NoSuchElementError{Message: "index out of range"}
	}
	return l[i], nil
}

// Slice returns a copy of the elements as a plain Go slice.
func (l List[T]) Slice() []T {
	return slices.Clone([]T(l))
}

// Plus concatenates l and other (Monoid operation).
func (l List[T]) Plus(other List[T]) List[T] {
	out := make(List[T], 0, len(l)+len(other))
	out = append(out, l...)
	return append(out, other...)
}

// Reversed returns the elements in reverse order.
func (l List[T]) Reversed() List[T] {
	out := ListOf(l...)
	slices.Reverse(out)
	return out
}

// ForEach calls fn for every element, front to back.
func (l List[T]) ForEach(fn func(T)) {
	for _, v := range l {
		fn(v)
	}
}

// ForEachIndexed calls fn with the 0-based index of every element.
func (l List[T]) ForEachIndexed(fn func(int, T)) {
	for i, v := range l {
		fn(i, v)
	}
}

// OnEach calls fn for every element and returns a copy of l.
func (l List[T]) OnEach(fn func(T)) List[T] {
	l.ForEach(fn)
	return ListOf(l...)
}

// AsSequence returns a lazy view over l.
func (l List[T]) AsSequence() Seq[T] {
	return SequenceOf(l...)
}

// MutableList is a List that can grow. It is owned by whoever created it.
type MutableList[T any] struct {
	items List[T]
}

// NewMutableList returns an empty MutableList.
func NewMutableList[T any]() *MutableList[T] {
	return &MutableList[T]{items: EmptyList[T]()}
}

// MutableListOf returns a MutableList seeded with items.
func MutableListOf[T any](items ...T) *MutableList[T] {
	return &MutableList[T]{items: ListOf(items...)}
}

// Add appends v.
func (m *MutableList[T]) Add(v T) *MutableList[T] {
	m.items = append(m.items, v)
	return m
}

// AddAll appends vs in order.
func (m *MutableList[T]) AddAll(vs ...T) *MutableList[T] {
	m.items = append(m.items, vs...)
	return m
}

// Len returns the current number of elements.
func (m *MutableList[T]) Len() int {
	return len(m.items)
}

// ToList copies the current contents into an immutable List.
func (m *MutableList[T]) ToList() List[T] {
	return ListOf(m.items...)
}

// AsSequence returns a lazy view of the elements present right now; later
// calls to Add are not observed by it.
func (m *MutableList[T]) AsSequence() Seq[T] {
	return m.ToList().AsSequence()
}
