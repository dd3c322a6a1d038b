package seqkit

// ============================================================================
// Predicates
// ============================================================================

// Not negates a predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}

// ============================================================================
// Filtering
// ============================================================================

// Filter keeps only elements matching the predicate, preserving order.
func (l List[T]) Filter(predicate func(T) bool) List[T] {
	out := EmptyList[T]()
	for _, v := range l {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterNot keeps only elements not matching the predicate.
func (l List[T]) FilterNot(predicate func(T) bool) List[T] {
	return l.Filter(Not(predicate))
}

// FilterIndexed is Filter with the 0-based index of each element.
func (l List[T]) FilterIndexed(predicate func(int, T) bool) List[T] {
	out := EmptyList[T]()
	for i, v := range l {
		if predicate(i, v) {
			out = append(out, v)
		}
	}
	return out
}

// Partition splits l into the elements matching the predicate and the
// rest. Both parts keep the original relative order.
func (l List[T]) Partition(predicate func(T) bool) Pair[List[T], List[T]] {
	matched, rest := EmptyList[T](), EmptyList[T]()
	for _, v := range l {
		if predicate(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return To(matched, rest)
}

// Distinct keeps the first occurrence of every value.
func Distinct[T comparable](l List[T]) List[T] {
	return DistinctBy(l, func(v T) T { return v })
}

// DistinctBy keeps the first element for every key. A later element whose
// key was already seen is dropped even if the element itself differs.
func DistinctBy[T any, K comparable](l List[T], keySelector func(T) K) List[T] {
	seen := make(map[K]struct{}, len(l))
	out := EmptyList[T]()
	for _, v := range l {
		k := keySelector(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ============================================================================
// Positional slicing
// ============================================================================

func clamp(n, length int) int {
	return max(0, min(n, length))
}

// Take returns the first n elements. n is clamped to [0, Len].
func (l List[T]) Take(n int) List[T] {
	return ListOf(l[:clamp(n, len(l))]...)
}

// TakeLast returns the last n elements in their original order.
func (l List[T]) TakeLast(n int) List[T] {
	return ListOf(l[len(l)-clamp(n, len(l)):]...)
}

// Drop returns everything but the first n elements.
func (l List[T]) Drop(n int) List[T] {
	return ListOf(l[clamp(n, len(l)):]...)
}

// DropLast returns everything but the last n elements.
func (l List[T]) DropLast(n int) List[T] {
	return ListOf(l[:len(l)-clamp(n, len(l))]...)
}

// prefixLen is the length of the longest prefix matching the predicate.
func (l List[T]) prefixLen(predicate func(T) bool) int {
	for i, v := range l {
		if !predicate(v) {
			return i
		}
	}
	return len(l)
}

// suffixStart is the index where the longest suffix matching the predicate begins.
func (l List[T]) suffixStart(predicate func(T) bool) int {
	for i := len(l) - 1; i >= 0; i-- {
		if !predicate(l[i]) {
			return i + 1
		}
	}
	return 0
}

// TakeWhile returns the longest prefix matching the predicate. It stops at
// the first failure and never skips ahead to later matches.
func (l List[T]) TakeWhile(predicate func(T) bool) List[T] {
	return ListOf(l[:l.prefixLen(predicate)]...)
}

// TakeLastWhile returns the longest suffix matching the predicate.
func (l List[T]) TakeLastWhile(predicate func(T) bool) List[T] {
	return ListOf(l[l.suffixStart(predicate):]...)
}

// DropWhile returns what TakeWhile leaves behind.
func (l List[T]) DropWhile(predicate func(T) bool) List[T] {
	return ListOf(l[l.prefixLen(predicate):]...)
}

// DropLastWhile returns what TakeLastWhile leaves behind.
func (l List[T]) DropLastWhile(predicate func(T) bool) List[T] {
	return ListOf(l[:l.suffixStart(predicate)]...)
}

// ============================================================================
// Element queries
// ============================================================================

// First returns the first element, or a [NoSuchElementError] when l is empty.
func (l List[T]) First() (T, error) {
	if len(l) == 0 {
		var zero T
		return zero, NoSuchElementError{Message: "list is empty"}
	}
	return l[0], nil
}

// Last returns the last element, or a [NoSuchElementError] when l is empty.
func (l List[T]) Last() (T, error) {
	if len(l) == 0 {
		var zero T
		return zero, NoSuchElementError{Message: "list is empty"}
	}
	return l[len(l)-1], nil
}

// FirstWhere returns the first element matching the predicate.
func (l List[T]) FirstWhere(predicate func(T) bool) (T, error) {
	if v, ok := l.FirstOrNone(predicate); ok {
		return v, nil
	}
	var zero T
	return zero, NoSuchElementError{Message: "list contains no element matching the predicate"}
}

// LastWhere returns the last element matching the predicate.
func (l List[T]) LastWhere(predicate func(T) bool) (T, error) {
	if v, ok := l.LastOrNone(predicate); ok {
		return v, nil
	}
	var zero T
	return zero, NoSuchElementError{Message: "list contains no element matching the predicate"}
}

// FirstOrNone is FirstWhere reporting absence with false instead of an error.
func (l List[T]) FirstOrNone(predicate func(T) bool) (T, bool) {
	for _, v := range l {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// LastOrNone scans from the back and reports absence with false.
func (l List[T]) LastOrNone(predicate func(T) bool) (T, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if predicate(l[i]) {
			return l[i], true
		}
	}
	var zero T
	return zero, false
}
