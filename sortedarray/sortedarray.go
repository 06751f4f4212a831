// Package sortedarray provides a dynamic array that keeps its values in
// sorted order. Inserts find their slot by binary search; lookups narrow
// the matching ordered range by binary search and then distinguish equal
// -ordering values with a caller-supplied equality function, so distinct
// values that compare equal can coexist.
package sortedarray

import "iter"

// CompareFunc defines the order of the array: negative if a sorts before
// b, zero if they sort equally, positive if a sorts after b.
type CompareFunc[V any] func(a, b V) int

// EqualFunc reports whether two values are the same value, as opposed to
// merely sorting equally.
type EqualFunc[V any] func(a, b V) bool

// Array is a sorted dynamic array. Create one with New; the zero value is
// not usable.
type Array[V any] struct {
	data  []V
	cmp   CompareFunc[V]
	equal EqualFunc[V]
}

// New creates an empty sorted array ordered by cmp, with equal deciding
// identity among equally ordered values.
func New[V any](cmp CompareFunc[V], equal EqualFunc[V]) *Array[V] {
	return &Array[V]{cmp: cmp, equal: equal}
}

// Len returns the number of values in the array.
func (a *Array[V]) Len() int {
	return len(a.data)
}

// Get returns the value at index i and whether i is in range.
func (a *Array[V]) Get(i int) (V, bool) {
	if i < 0 || i >= len(a.data) {
		var zero V
		return zero, false
	}
	return a.data[i], true
}

// Insert adds v to the array, keeping it sorted. Values that sort equally
// to an existing run are inserted within that run.
func (a *Array[V]) Insert(v V) {
	// Binary search for the insertion slot: the first index whose value
	// sorts after v.
	left, right := 0, len(a.data)
	for left < right {
		mid := (left + right) / 2
		if a.cmp(v, a.data[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}

	a.data = append(a.data, v)
	copy(a.data[left+1:], a.data[left:])
	a.data[left] = v
}

// IndexOf returns the index of v, or -1 if v is not present. The sorted
// range of values ordering equally to v is located by binary search and
// scanned with the equality function.
func (a *Array[V]) IndexOf(v V) int {
	first, last, ok := a.equalRange(v)
	if !ok {
		return -1
	}
	for i := first; i <= last; i++ {
		if a.equal(v, a.data[i]) {
			return i
		}
	}
	return -1
}

// equalRange returns the inclusive index range of values ordering equally
// to v, or ok=false if there are none.
func (a *Array[V]) equalRange(v V) (first, last int, ok bool) {
	left, right := 0, len(a.data)
	for left < right {
		mid := (left + right) / 2
		if a.cmp(v, a.data[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	last = left - 1

	left, right = 0, len(a.data)
	for left < right {
		mid := (left + right) / 2
		if a.cmp(v, a.data[mid]) <= 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	first = left

	if first > last {
		return 0, 0, false
	}
	return first, last, true
}

// Remove deletes the value at index i. Out-of-range indexes are a no-op.
func (a *Array[V]) Remove(i int) {
	a.RemoveRange(i, 1)
}

// RemoveRange deletes length values starting at index i. Ranges that do
// not lie fully inside the array are a no-op.
func (a *Array[V]) RemoveRange(i, length int) {
	if i < 0 || length < 0 || i+length > len(a.data) {
		return
	}
	a.data = append(a.data[:i], a.data[i+length:]...)
}

// Clear removes all values.
func (a *Array[V]) Clear() {
	a.data = a.data[:0]
}

// All returns an iterator over the values in sorted order, for use with a
// range statement. The array must not be modified during iteration.
func (a *Array[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}
