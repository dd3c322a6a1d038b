package seqkit

// Map returns transform(x) for every x in l, in order.
func Map[T, R any](l List[T], transform func(T) R) List[R] {
	out := make(List[R], len(l))
	for i, v := range l {
		out[i] = transform(v)
	}
	return out
}

// MapIndexed is Map with the 0-based index of each element.
func MapIndexed[T, R any](l List[T], transform func(int, T) R) List[R] {
	out := make(List[R], len(l))
	for i, v := range l {
		out[i] = transform(i, v)
	}
	return out
}

// MapNotNone applies transform and keeps only the results it reports as present.
//
//	short := seqkit.MapNotNone(cities, func(c string) (string, bool) {
//	    return c, len(c) <= 5
//	})
func MapNotNone[T, R any](l List[T], transform func(T) (R, bool)) List[R] {
	out := make(List[R], 0, len(l))
	for _, v := range l {
		if r, ok := transform(v); ok {
			out = append(out, r)
		}
	}
	return out
}

// FlatMap concatenates the lists produced for each element, in order.
func FlatMap[T, R any](l List[T], transform func(T) List[R]) List[R] {
	out := EmptyList[R]()
	for _, v := range l {
		out = append(out, transform(v)...)
	}
	return out
}

// GroupBy buckets elements by keySelector. Keys iterate in the order they
// were first seen and each bucket keeps the input order.
func GroupBy[T any, K comparable](l List[T], keySelector func(T) K) Mapping[K, List[T]] {
	groups := newMapping[K, List[T]](InsertionOrder, nil, nil)
	for _, v := range l {
		k := keySelector(v)
		bucket, _ := groups.Get(k)
		groups.put(k, append(bucket, v))
	}
	return groups
}

// Associate builds an insertion-ordered Mapping from the pair produced for
// each element. Later pairs overwrite earlier ones with the same key.
func Associate[T any, K comparable, V any](l List[T], transform func(T) Pair[K, V]) Mapping[K, V] {
	return newMapping(InsertionOrder, nil, Map(l, transform))
}

// ZipWith combines a and b positionally. The result is as long as the
// shorter input; extra elements are ignored.
func ZipWith[A, B, R any](a List[A], b List[B], combine func(A, B) R) List[R] {
	n := min(len(a), len(b))
	out := make(List[R], n)
	for i := range n {
		out[i] = combine(a[i], b[i])
	}
	return out
}

// Zip pairs a and b positionally, truncating to the shorter input.
func Zip[A, B any](a List[A], b List[B]) List[Pair[A, B]] {
	return ZipWith(a, b, To[A, B])
}
