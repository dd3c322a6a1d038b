package seqkit

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Seq is a lazy, finite sequence. Nothing is computed until the sequence is
// ranged over or materialized with [Seq.ToList]; each consumer re-runs the
// generation rule from the start.
//
// Example:
//
//	evens := seqkit.Range(1, 10).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Take(3)
//
//	for n := range evens {
//	    fmt.Println(n) // 2, 4, 6
//	}
type Seq[T any] func(yield func(T) bool)

// SequenceOf returns a Seq over a snapshot of items.
func SequenceOf[T any](items ...T) Seq[T] {
	snapshot := ListOf(items...)
	return func(yield func(T) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// EmptySequence returns a Seq that yields nothing.
func EmptySequence[T any]() Seq[T] {
	return func(func(T) bool) {}
}

// Range yields from..to inclusive. It is empty when from > to.
func Range[T constraints.Integer](from, to T) Seq[T] {
	return func(yield func(T) bool) {
		if from > to {
			return
		}
		for v := from; ; v++ {
			if !yield(v) || v == to {
				return
			}
		}
	}
}

// Until yields from..to with to excluded.
func Until[T constraints.Integer](from, to T) Seq[T] {
	return func(yield func(T) bool) {
		for v := from; v < to; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// RangeStep yields from, from+step, ... while the value stays <= to.
// A step that is not positive is an [IllegalArgumentError].
func RangeStep[T constraints.Integer](from, to, step T) (Seq[T], error) {
	err := Require(step > 0, func() string { return "step must be positive" })
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		if from > to {
			return
		}
		for v := from; ; {
			if !yield(v) {
				return
			}
			next := v + step
			if next < v || next > to {
				return
			}
			v = next
		}
	}, nil
}

// Iter exposes s as a standard library iterator.
func (s Seq[T]) Iter() iter.Seq[T] {
	return iter.Seq[T](s)
}

// ToList materializes s.
func (s Seq[T]) ToList() List[T] {
	out := EmptyList[T]()
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Filter keeps only elements matching the predicate.
func (s Seq[T]) Filter(predicate func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// FilterNot drops elements matching the predicate.
func (s Seq[T]) FilterNot(predicate func(T) bool) Seq[T] {
	return s.Filter(Not(predicate))
}

// Take limits the sequence to its first n elements. Element n+1 is never
// generated.
func (s Seq[T]) Take(n int) Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range s {
			if !yield(v) {
				return
			}
			taken++
			if taken >= n {
				return
			}
		}
	}
}

// Drop skips the first n elements.
func (s Seq[T]) Drop(n int) Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range s {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile yields the longest prefix matching the predicate.
func (s Seq[T]) TakeWhile(predicate func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !predicate(v) || !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips the longest prefix matching the predicate and yields the rest.
func (s Seq[T]) DropWhile(predicate func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range s {
			if dropping && predicate(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	}
}

// OnEach calls fn for every element as it passes through.
func (s Seq[T]) OnEach(fn func(T)) Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			fn(v)
			if !yield(v) {
				return
			}
		}
	}
}

// SeqMap transforms elements lazily.
func SeqMap[T, R any](s Seq[T], transform func(T) R) Seq[R] {
	return func(yield func(R) bool) {
		for v := range s {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// SeqMapIndexed is SeqMap with the 0-based position of each element.
func SeqMapIndexed[T, R any](s Seq[T], transform func(int, T) R) Seq[R] {
	return func(yield func(R) bool) {
		i := 0
		for v := range s {
			if !yield(transform(i, v)) {
				return
			}
			i++
		}
	}
}

// SeqFlatMap concatenates the sub-sequences produced for each element.
func SeqFlatMap[T, R any](s Seq[T], transform func(T) Seq[R]) Seq[R] {
	return func(yield func(R) bool) {
		for v := range s {
			for r := range transform(v) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// SeqZipWith combines a and b positionally and stops with the shorter one.
func SeqZipWith[A, B, R any](a Seq[A], b Seq[B], combine func(A, B) R) Seq[R] {
	return func(yield func(R) bool) {
		next, stop := iter.Pull(iter.Seq[B](b))
		defer stop()
		for x := range a {
			y, ok := next()
			if !ok || !yield(combine(x, y)) {
				return
			}
		}
	}
}

// SeqZip pairs a and b positionally.
func SeqZip[A, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return SeqZipWith(a, b, To[A, B])
}

// SeqDistinct yields the first occurrence of every value.
func SeqDistinct[T comparable](s Seq[T]) Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range s {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
