package seqkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []List[int]{
	ListOf(1),
	ListOf(4, 2, 7, 3, 2, 0),
	ListOf(5, 5, 5),
	Range(-3, 12).ToList(),
}

func TestReduce_IsFoldOverTail(t *testing.T) {
	minus := func(acc, v int) int { return acc - v }

	for _, l := range samples {
		got, err := l.Reduce(minus)
		require.NoError(t, err)

		head, err := l.First()
		require.NoError(t, err)
		assert.Equal(t, Fold(l.Drop(1), head, minus), got)
	}
}

func TestFilter_PartitionsInput(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	for _, l := range samples {
		kept, dropped := l.Filter(even), l.FilterNot(even)

		assert.Equal(t, l.Len(), kept.Len()+dropped.Len())
		assert.ElementsMatch(t, l, kept.Plus(dropped))
		assert.Equal(t, Pair[List[int], List[int]]{kept, dropped}, l.Partition(even))
	}
}

func TestDistinct_Idempotent(t *testing.T) {
	for _, l := range samples {
		once := Distinct(l)
		assert.Equal(t, once, Distinct(once))
	}
}

func TestTakeDrop_Recompose(t *testing.T) {
	for _, l := range samples {
		for n := 0; n <= l.Len(); n++ {
			assert.Equal(t, l, l.Take(n).Plus(l.Drop(n)))
			assert.Equal(t, l, l.DropLast(n).Plus(l.TakeLast(n)))
		}
	}
}

func TestWhile_Recompose(t *testing.T) {
	small := func(n int) bool { return n < 5 }

	for _, l := range samples {
		assert.Equal(t, l, l.TakeWhile(small).Plus(l.DropWhile(small)))
		assert.Equal(t, l, l.DropLastWhile(small).Plus(l.TakeLastWhile(small)))
	}
}

func TestZip_LengthIsShorter(t *testing.T) {
	assert.Equal(t, 4, Zip(ListOf(1, 2, 3, 4), ListOf("a", "b", "c", "d", "e")).Len())
	assert.Equal(t, 2, Zip(ListOf(1, 2, 3, 4), ListOf("a", "b")).Len())
}

func TestSequence_MatchesEagerList(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	square := func(n int) int { return n * n }

	for _, l := range samples {
		eager := Map(l.Filter(even), square).Take(2)
		lazy := SeqMap(l.AsSequence().Filter(even), square).Take(2).ToList()

		assert.Equal(t, eager, lazy)
	}
}
