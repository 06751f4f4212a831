// Package list provides a doubly-linked list. Each entry links to its
// predecessor and successor, so the list can be walked in either
// direction and entries can be unlinked in O(1) once found.
package list

import "iter"

// Entry is a single element of a List. Entries are created by the list's
// insertion methods and stay valid until removed.
type Entry[V any] struct {
	value      V
	prev, next *Entry[V]
	list       *List[V]
}

// Value returns the value stored in e.
func (e *Entry[V]) Value() V {
	return e.value
}

// SetValue replaces the value stored in e.
func (e *Entry[V]) SetValue(v V) {
	e.value = v
}

// Next returns the following entry, or nil at the end of the list.
func (e *Entry[V]) Next() *Entry[V] {
	return e.next
}

// Prev returns the preceding entry, or nil at the front of the list.
func (e *Entry[V]) Prev() *Entry[V] {
	return e.prev
}

// List is a doubly-linked list. The zero value is an empty list ready to
// use.
type List[V any] struct {
	head, tail *Entry[V]
	length     int
}

// New creates an empty list.
func New[V any]() *List[V] {
	return &List[V]{}
}

// Len returns the number of entries in the list.
func (l *List[V]) Len() int {
	return l.length
}

// First returns the first entry, or nil if the list is empty.
func (l *List[V]) First() *Entry[V] {
	return l.head
}

// Last returns the last entry, or nil if the list is empty.
func (l *List[V]) Last() *Entry[V] {
	return l.tail
}

// Append adds v at the end of the list and returns its entry.
func (l *List[V]) Append(v V) *Entry[V] {
	e := &Entry[V]{value: v, prev: l.tail, list: l}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.length++
	return e
}

// Prepend adds v at the front of the list and returns its entry.
func (l *List[V]) Prepend(v V) *Entry[V] {
	e := &Entry[V]{value: v, next: l.head, list: l}
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.length++
	return e
}

// Nth returns the entry at index i, or nil if i is out of range. This is
// a linear walk from the front.
func (l *List[V]) Nth(i int) *Entry[V] {
	if i < 0 || i >= l.length {
		return nil
	}
	e := l.head
	for ; i > 0; i-- {
		e = e.next
	}
	return e
}

// Remove unlinks e from the list. Removing an entry that belongs to a
// different list, or one that was already removed, is a no-op returning
// false.
func (l *List[V]) Remove(e *Entry[V]) bool {
	if e == nil || e.list != l {
		return false
	}

	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}

	e.prev, e.next, e.list = nil, nil, nil
	l.length--
	return true
}

// RemoveFunc unlinks every entry whose value matches, returning the
// number of entries removed.
func (l *List[V]) RemoveFunc(match func(V) bool) int {
	removed := 0
	for e := l.head; e != nil; {
		next := e.next
		if match(e.value) {
			l.Remove(e)
			removed++
		}
		e = next
	}
	return removed
}

// Find returns the first entry whose value matches, or nil.
func (l *List[V]) Find(match func(V) bool) *Entry[V] {
	for e := l.head; e != nil; e = e.next {
		if match(e.value) {
			return e
		}
	}
	return nil
}

// ToSlice returns the values of the list in order.
func (l *List[V]) ToSlice() []V {
	if l.length == 0 {
		return nil
	}
	out := make([]V, 0, l.length)
	for e := l.head; e != nil; e = e.next {
		out = append(out, e.value)
	}
	return out
}

// All returns an iterator over the values of the list, front to back, for
// use with a range statement. The entry being yielded may be removed
// during iteration; other modifications invalidate the iteration.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.head; e != nil; {
			next := e.next
			if !yield(e.value) {
				return
			}
			e = next
		}
	}
}

// Sort reorders the list into ascending order as defined by less, using
// a bottom-up merge of entry links. The sort is stable: entries with
// equal values keep their relative order.
func (l *List[V]) Sort(less func(a, b V) bool) {
	if l.length < 2 {
		return
	}

	merged := mergeSort(l.head, less)

	// Rebuild prev links, head, and tail from the merged chain.
	l.head = merged
	var prev *Entry[V]
	for e := merged; e != nil; e = e.next {
		e.prev = prev
		prev = e
	}
	l.tail = prev
}

func mergeSort[V any](head *Entry[V], less func(a, b V) bool) *Entry[V] {
	if head == nil || head.next == nil {
		return head
	}

	// Split at the middle using a slow/fast walk.
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil

	left := mergeSort(head, less)
	right := mergeSort(mid, less)

	// Merge, preferring left on ties for stability.
	var out, tail *Entry[V]
	appendEntry := func(e *Entry[V]) {
		if tail == nil {
			out = e
		} else {
			tail.next = e
		}
		tail = e
	}
	for left != nil && right != nil {
		if less(right.value, left.value) {
			e := right
			right = right.next
			appendEntry(e)
		} else {
			e := left
			left = left.next
			appendEntry(e)
		}
	}
	for ; left != nil; left = left.next {
		appendEntry(left)
	}
	for ; right != nil; right = right.next {
		appendEntry(right)
	}
	tail.next = nil
	return out
}
