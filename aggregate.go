package seqkit

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint of the arithmetic aggregates.
type Number interface {
	constraints.Integer | constraints.Float
}

// ============================================================================
// Rendering
// ============================================================================

type joinConfig struct {
	separator string
	prefix    string
	suffix    string
	limit     int
	truncated string
}

// JoinOption configures JoinToString.
type JoinOption func(*joinConfig)

// WithSeparator sets the text placed between elements. Default ", ".
func WithSeparator(separator string) JoinOption {
	return func(c *joinConfig) {
		c.separator = separator
	}
}

// WithPrefix sets the text placed before the first element.
func WithPrefix(prefix string) JoinOption {
	return func(c *joinConfig) {
		c.prefix = prefix
	}
}

// WithSuffix sets the text placed after the last element.
func WithSuffix(suffix string) JoinOption {
	return func(c *joinConfig) {
		c.suffix = suffix
	}
}

// WithLimit renders at most n elements and then truncated in place of the rest.
func WithLimit(n int, truncated string) JoinOption {
	return func(c *joinConfig) {
		c.limit = n
		c.truncated = truncated
	}
}

// JoinToString renders every element with its default textual form
// (fmt.Sprint) and concatenates them with the configured separator,
// prefix and suffix.
//
// Example:
//
//	seqkit.ListOf("Seoul", "Tokyo").JoinToString()                          // "Seoul, Tokyo"
//	seqkit.ListOf("Seoul", "Tokyo").JoinToString(seqkit.WithSeparator("|")) // "Seoul|Tokyo"
func (l List[T]) JoinToString(opts ...JoinOption) string {
	return l.JoinToStringFunc(func(v T) string { return fmt.Sprint(v) }, opts...)
}

// JoinToStringFunc is JoinToString with a custom rendering for each element.
func (l List[T]) JoinToStringFunc(transform func(T) string, opts ...JoinOption) string {
	cfg := joinConfig{
		separator: ", ",
		limit:     -1,
		truncated: "...",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	sb.WriteString(cfg.prefix)
	for i, v := range l {
		if i > 0 {
			sb.WriteString(cfg.separator)
		}
		if cfg.limit >= 0 && i >= cfg.limit {
			sb.WriteString(cfg.truncated)
			break
		}
		sb.WriteString(transform(v))
	}
	sb.WriteString(cfg.suffix)
	return sb.String()
}

// ============================================================================
// Counting and predicates
// ============================================================================

// Count returns the number of elements.
func (l List[T]) Count() int {
	return len(l)
}

// CountWhere returns the number of elements matching the predicate.
func (l List[T]) CountWhere(predicate func(T) bool) int {
	n := 0
	for _, v := range l {
		if predicate(v) {
			n++
		}
	}
	return n
}

// Any reports whether l has at least one element.
func (l List[T]) Any() bool {
	return len(l) > 0
}

// AnyWhere reports whether some element matches. It stops at the first match.
func (l List[T]) AnyWhere(predicate func(T) bool) bool {
	_, ok := l.FirstOrNone(predicate)
	return ok
}

// None reports whether l is empty.
func (l List[T]) None() bool {
	return !l.Any()
}

// NoneWhere reports whether no element matches.
func (l List[T]) NoneWhere(predicate func(T) bool) bool {
	return !l.AnyWhere(predicate)
}

// All reports whether every element matches. It is true for an empty list.
func (l List[T]) All(predicate func(T) bool) bool {
	return !l.AnyWhere(Not(predicate))
}

// ============================================================================
// Folding
// ============================================================================

var errEmptyReduce = UnsupportedOperationError{Message: "Empty collection can't be reduced."}

// Reduce folds l from the left using the first element as the initial
// accumulator. An empty list is an [UnsupportedOperationError].
func (l List[T]) Reduce(operation func(acc T, v T) T) (T, error) {
	if len(l) == 0 {
		var zero T
		return zero, errEmptyReduce
	}
	return Fold(l[1:], l[0], operation), nil
}

// ReduceRight folds l from the right using the last element as the initial
// accumulator. operation receives (element, accumulator).
func (l List[T]) ReduceRight(operation func(v T, acc T) T) (T, error) {
	if len(l) == 0 {
		var zero T
		return zero, errEmptyReduce
	}
	return FoldRight(l[:len(l)-1], l[len(l)-1], operation), nil
}

// Fold accumulates from the left starting at initial. An empty list
// returns initial unchanged.
func Fold[T, R any](l List[T], initial R, operation func(acc R, v T) R) R {
	acc := initial
	for _, v := range l {
		acc = operation(acc, v)
	}
	return acc
}

// FoldRight accumulates from the right starting at initial. operation
// receives (element, accumulator).
func FoldRight[T, R any](l List[T], initial R, operation func(v T, acc R) R) R {
	acc := initial
	for i := len(l) - 1; i >= 0; i-- {
		acc = operation(l[i], acc)
	}
	return acc
}

// ============================================================================
// Numeric aggregates
// ============================================================================

// Min returns the least element. Ties resolve to the first one encountered.
// An empty list is a [NoSuchElementError].
func Min[T cmp.Ordered](l List[T]) (T, error) {
	return MinBy(l, func(v T) T { return v })
}

// Max returns the greatest element. Ties resolve to the first one encountered.
func Max[T cmp.Ordered](l List[T]) (T, error) {
	return MaxBy(l, func(v T) T { return v })
}

// MinBy returns the first element with the least selector value.
func MinBy[T any, K cmp.Ordered](l List[T], selector func(T) K) (T, error) {
	return extremum(l, selector, func(candidate, best K) bool { return cmp.Less(candidate, best) })
}

// MaxBy returns the first element with the greatest selector value.
func MaxBy[T any, K cmp.Ordered](l List[T], selector func(T) K) (T, error) {
	return extremum(l, selector, func(candidate, best K) bool { return cmp.Less(best, candidate) })
}

// MinOf returns the least selector value rather than the element holding it.
func MinOf[T any, K cmp.Ordered](l List[T], selector func(T) K) (K, error) {
	v, err := MinBy(l, selector)
	if err != nil {
		var zero K
		return zero, err
	}
	return selector(v), nil
}

// MaxOf returns the greatest selector value.
func MaxOf[T any, K cmp.Ordered](l List[T], selector func(T) K) (K, error) {
	v, err := MaxBy(l, selector)
	if err != nil {
		var zero K
		return zero, err
	}
	return selector(v), nil
}

func extremum[T any, K cmp.Ordered](l List[T], selector func(T) K, better func(candidate, best K) bool) (T, error) {
	if len(l) == 0 {
		var zero T
		return zero, NoSuchElementError{Message: "list is empty"}
	}
	best, bestKey := l[0], selector(l[0])
	for _, v := range l[1:] {
		if k := selector(v); better(k, bestKey) {
			best, bestKey = v, k
		}
	}
	return best, nil
}

// Sum adds the elements. An empty list sums to zero.
func Sum[T Number](l List[T]) T {
	return Fold(l, T(0), func(acc T, v T) T { return acc + v })
}

// Average returns the arithmetic mean. An empty list is a
// [NoSuchElementError]; Average never returns NaN for want of input.
func Average[T Number](l List[T]) (float64, error) {
	if len(l) == 0 {
		return 0, NoSuchElementError{Message: "cannot average an empty list"}
	}
	total := Fold(l, 0.0, func(acc float64, v T) float64 { return acc + float64(v) })
	return total / float64(len(l)), nil
}
