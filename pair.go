package seqkit

import "fmt"

// Pair is an immutable 2-tuple. It is the element type produced by [Zip]
// and the input of the mapping constructors.
type Pair[A, B any] struct {
	First  A
	Second B
}

// To builds a Pair, reading like a key-to-value arrow:
//
//	seqkit.MappingOf(seqkit.To("SEO", "Seoul"), seqkit.To("TOK", "Tokyo"))
func To[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String renders the pair as "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
