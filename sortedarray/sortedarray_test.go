package sortedarray

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newIntArray() *Array[int] {
	return New[int](
		func(a, b int) int { return a - b },
		func(a, b int) bool { return a == b },
	)
}

func toSlice[V any](a *Array[V]) []V {
	var out []V
	for v := range a.All() {
		out = append(out, v)
	}
	return out
}

func TestInsertKeepsOrder(t *testing.T) {
	a := newIntArray()
	for _, v := range []int{5, 1, 4, 1, 3, 2} {
		a.Insert(v)
	}
	require.Equal(t, []int{1, 1, 2, 3, 4, 5}, toSlice(a))
	require.Equal(t, 6, a.Len())
}

func TestGet(t *testing.T) {
	a := newIntArray()
	a.Insert(2)
	a.Insert(1)

	v, ok := a.Get(0)
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = a.Get(2)
	require.False(t, ok)
	_, ok = a.Get(-1)
	require.False(t, ok)
}

func TestIndexOf(t *testing.T) {
	a := newIntArray()
	for _, v := range []int{10, 20, 30, 40} {
		a.Insert(v)
	}

	require.Equal(t, 0, a.IndexOf(10))
	require.Equal(t, 2, a.IndexOf(30))
	require.Equal(t, -1, a.IndexOf(25))
	require.Equal(t, -1, a.IndexOf(99))
}

func TestIndexOfDistinguishesEqualOrdering(t *testing.T) {
	// Values sort by key only; the equality function tells apart values
	// inside a run of equal keys.
	type item struct{ key, id int }
	a := New[item](
		func(x, y item) int { return x.key - y.key },
		func(x, y item) bool { return x == y },
	)

	a.Insert(item{1, 0})
	a.Insert(item{2, 1})
	a.Insert(item{2, 2})
	a.Insert(item{2, 3})
	a.Insert(item{3, 4})

	for id := 1; id <= 3; id++ {
		i := a.IndexOf(item{2, id})
		require.NotEqual(t, -1, i, "id %d", id)
		got, ok := a.Get(i)
		require.True(t, ok)
		require.Equal(t, item{2, id}, got)
	}

	require.Equal(t, -1, a.IndexOf(item{2, 9}))
}

func TestRemove(t *testing.T) {
	a := newIntArray()
	for _, v := range []int{1, 2, 3, 4} {
		a.Insert(v)
	}

	a.Remove(1)
	require.Equal(t, []int{1, 3, 4}, toSlice(a))

	// Out of range is a no-op.
	a.Remove(5)
	a.Remove(-1)
	require.Equal(t, 3, a.Len())
}

func TestRemoveRange(t *testing.T) {
	a := newIntArray()
	for v := 1; v <= 6; v++ {
		a.Insert(v)
	}

	a.RemoveRange(1, 3)
	require.Equal(t, []int{1, 5, 6}, toSlice(a))

	// Ranges reaching past the end are a no-op.
	a.RemoveRange(2, 5)
	require.Equal(t, 3, a.Len())
}

func TestClear(t *testing.T) {
	a := newIntArray()
	a.Insert(1)
	a.Insert(2)

	a.Clear()
	require.Equal(t, 0, a.Len())
	require.Nil(t, toSlice(a))

	a.Insert(3)
	require.Equal(t, []int{3}, toSlice(a))
}

func TestRandomInsertRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a := newIntArray()

	for step := 0; step < 2000; step++ {
		if a.Len() == 0 || rng.Intn(3) > 0 {
			a.Insert(rng.Intn(100))
		} else {
			a.Remove(rng.Intn(a.Len()))
		}

		vals := toSlice(a)
		for i := 1; i < len(vals); i++ {
			require.LessOrEqual(t, vals[i-1], vals[i])
		}
	}

	// Every present value is findable by IndexOf.
	for _, v := range toSlice(a) {
		i := a.IndexOf(v)
		require.NotEqual(t, -1, i)
		got, ok := a.Get(i)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}
