package seqkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var cities = ListOf("Seoul", "Tokyo", "Mountain View")

func TestMap(t *testing.T) {
	assert.Equal(t, List[string]{"SEOUL", "TOKYO", "MOUNTAIN VIEW"}, Map(cities, strings.ToUpper))
	assert.Equal(t, List[int]{5, 5, 13}, Map(cities, func(c string) int { return len(c) }))
	assert.Empty(t, Map(EmptyList[string](), strings.ToUpper))
}

func TestMapIndexed(t *testing.T) {
	numbers := Range(0, 10).ToList()

	got := MapIndexed(numbers, func(i, n int) int { return i * n })

	assert.Equal(t, List[int]{0, 1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, got)
}

func TestMapNotNone(t *testing.T) {
	short := MapNotNone(cities, func(c string) (string, bool) {
		return c, len(c) <= 5
	})

	assert.Equal(t, List[string]{"Seoul", "Tokyo"}, short)
}

func TestMap_KeepsAbsentResults(t *testing.T) {
	seoul := "Seoul"
	got := Map(cities, func(c string) *string {
		if len(c) <= 5 {
			return &seoul
		}
		return nil
	})

	assert.Equal(t, 3, got.Len())
	assert.Nil(t, got[2])
}

func TestFlatMap(t *testing.T) {
	numbers := Range(1, 4).ToList()

	got := FlatMap(numbers, func(n int) List[int] { return Range(1, n).ToList() })

	assert.Equal(t, List[int]{1, 1, 2, 1, 2, 3, 1, 2, 3, 4}, got)
	assert.Empty(t, FlatMap(numbers, func(int) List[int] { return EmptyList[int]() }))
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy(ListOf("Mountain View", "Seoul", "NYC", "Singapore", "Tokyo"), func(c string) string {
		if len(c) <= 5 {
			return "A"
		}
		return "B"
	})

	assert.Equal(t, List[string]{"B", "A"}, groups.Keys(), "first-seen key order")
	a, _ := groups.Get("A")
	b, _ := groups.Get("B")
	assert.Equal(t, List[string]{"Seoul", "NYC", "Tokyo"}, a)
	assert.Equal(t, List[string]{"Mountain View", "Singapore"}, b)
}

func TestAssociate(t *testing.T) {
	m := Associate(cities, func(c string) Pair[string, int] { return To(c[:1], len(c)) })

	assert.Equal(t, List[string]{"S", "T", "M"}, m.Keys())
	v, _ := m.Get("M")
	assert.Equal(t, 13, v)
}

func TestZip(t *testing.T) {
	codes := ListOf("SEO", "TOK", "MTV", "NYC")

	pairs := Zip(codes, cities)

	assert.Equal(t, 3, pairs.Len())
	assert.Equal(t, List[string]{"SEO:Seoul", "TOK:Tokyo", "MTV:Mountain View"}, Map(pairs, func(p Pair[string, string]) string {
		return p.First + ":" + p.Second
	}))
	assert.Equal(t, "(SEO, Seoul)", pairs[0].String())
}

func TestZipWith(t *testing.T) {
	codes := ListOf("SEO", "TOK", "MTV", "NYC")

	got := ZipWith(codes, cities, func(code, name string) string {
		return code + " (" + name + ")"
	})

	assert.Equal(t, List[string]{"SEO (Seoul)", "TOK (Tokyo)", "MTV (Mountain View)"}, got)
}

func TestZip_Truncates(t *testing.T) {
	got := Zip(ListOf(1, 2, 3, 4), ListOf("a", "b"))

	assert.Equal(t, List[Pair[int, string]]{To(1, "a"), To(2, "b")}, got)
	assert.Empty(t, Zip(EmptyList[int](), ListOf("a")))
}
