package seqkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Constructor Tests
// ============================================================================

func TestListOf(t *testing.T) {
	items := []string{"Seoul", "Tokyo", "San Francisco"}
	l := ListOf(items...)
	items[0] = "Busan"

	assert.Equal(t, List[string]{"Seoul", "Tokyo", "San Francisco"}, l)
	assert.Equal(t, 3, l.Len())
}

func TestEmptyList(t *testing.T) {
	l := EmptyList[string]()

	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.NotNil(t, l)
}

func TestOfSize(t *testing.T) {
	t.Run("holds n absent slots", func(t *testing.T) {
		slots, err := OfSize[string](3)

		require.NoError(t, err)
		assert.Equal(t, 3, slots.Len())
		for _, slot := range slots {
			assert.Nil(t, slot)
		}
	})

	t.Run("rejects a negative size", func(t *testing.T) {
		_, err := OfSize[string](-1)

		var aerr IllegalArgumentError
		assert.ErrorAs(t, err, &aerr)
	})
}

func TestListOfNotNil(t *testing.T) {
	seoul, tokyo := "Seoul", "Tokyo"

	assert.Empty(t, ListOfNotNil[string](nil))
	assert.Equal(t, List[string]{"Seoul", "Tokyo"}, ListOfNotNil(&seoul, nil, &tokyo, nil))
}

// ============================================================================
// List Method Tests
// ============================================================================

func TestList_Get(t *testing.T) {
	l := ListOf("a", "b")

	v, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = l.Get(2)
	var nerr NoSuchElementError
	assert.ErrorAs(t, err, &nerr)
}

func TestList_Plus(t *testing.T) {
	a := ListOf(1, 2)
	b := ListOf(3)

	assert.Equal(t, List[int]{1, 2, 3}, a.Plus(b))
	assert.Equal(t, a, a.Plus(EmptyList[int]()))
	assert.Equal(t, a, EmptyList[int]().Plus(a))
}

func TestList_Reversed(t *testing.T) {
	l := ListOf(1, 2, 3)

	assert.Equal(t, List[int]{3, 2, 1}, l.Reversed())
	assert.Equal(t, List[int]{1, 2, 3}, l)
}

func TestList_OnEach(t *testing.T) {
	var seen []string
	out := ListOf("a", "b").OnEach(func(s string) {
		seen = append(seen, s)
	})

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, List[string]{"a", "b"}, out)
}

func TestList_OnEach_ReturnsCopy(t *testing.T) {
	in := ListOf("a", "b")

	out := in.OnEach(func(string) {})
	out[0] = "z"

	assert.Equal(t, List[string]{"a", "b"}, in)
}

func TestList_ForEachIndexed(t *testing.T) {
	var got []int
	ListOf(10, 20, 30).ForEachIndexed(func(i, v int) {
		got = append(got, i*v)
	})

	assert.Equal(t, []int{0, 20, 60}, got)
}

func TestList_Slice(t *testing.T) {
	l := ListOf(1, 2)
	s := l.Slice()
	s[0] = 9

	assert.Equal(t, List[int]{1, 2}, l)
}

// ============================================================================
// MutableList Tests
// ============================================================================

func TestMutableList_Add(t *testing.T) {
	m := NewMutableList[string]()
	m.Add("Seoul").AddAll("Tokyo", "NYC")

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, List[string]{"Seoul", "Tokyo", "NYC"}, m.ToList())
}

func TestMutableList_AsSequence(t *testing.T) {
	m := MutableListOf(1, 2)
	snapshot := m.AsSequence()
	m.Add(3)

	assert.Equal(t, List[int]{1, 2}, snapshot.ToList())
	assert.Equal(t, List[int]{1, 2, 3}, m.ToList())
}

func TestMutableList_ToList(t *testing.T) {
	m := MutableListOf("a")
	l := m.ToList()
	m.Add("b")

	assert.Equal(t, List[string]{"a"}, l)
}
