// Package hashtable provides a hash table mapping keys to values using
// open chaining: colliding entries are linked into per-bucket chains, and
// the bucket array grows through a series of prime sizes as the table
// fills. Hashing and key equality are supplied by the caller, so keys do
// not need to be comparable in the Go sense.
package hashtable

import "iter"

// HashFunc computes the hash of a key.
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are the same.
type EqualFunc[K any] func(a, b K) bool

// primes is a series of good hash table sizes: each roughly double the
// previous value and as far as possible from the nearest powers of two.
var primes = []int{
	193, 389, 769, 1543, 3079, 6151, 12289, 24593, 49157, 98317,
	196613, 393241, 786433, 1572869, 3145739, 6291469,
	12582917, 25165843, 50331653, 100663319, 201326611,
	402653189, 805306457, 1610612741,
}

type entry[K, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Table is an open-chaining hash table. Create one with New; the zero
// value is not usable.
type Table[K, V any] struct {
	hash    HashFunc[K]
	equal   EqualFunc[K]
	buckets []*entry[K, V]
	entries int

	// primeIndex is the position in primes of the current bucket count.
	primeIndex int
}

// New creates an empty table using the given hash and equality functions.
func New[K, V any](hash HashFunc[K], equal EqualFunc[K]) *Table[K, V] {
	return &Table[K, V]{
		hash:    hash,
		equal:   equal,
		buckets: make([]*entry[K, V], primes[0]),
	}
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	return t.entries
}

func (t *Table[K, V]) bucket(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// enlarge grows the bucket array to the next prime size and rehashes
// every entry into it.
func (t *Table[K, V]) enlarge() {
	t.primeIndex++
	size := t.entries * 10
	if t.primeIndex < len(primes) {
		size = primes[t.primeIndex]
	}

	old := t.buckets
	t.buckets = make([]*entry[K, V], size)
	for _, e := range old {
		for e != nil {
			next := e.next
			i := t.bucket(e.key)
			e.next = t.buckets[i]
			t.buckets[i] = e
			e = next
		}
	}
}

// Insert adds a key/value pair to the table. If an entry with the same
// key already exists it is overwritten.
func (t *Table[K, V]) Insert(key K, value V) {
	// Collision chains degrade past 1/3 occupancy; grow before that.
	if t.entries*3 >= len(t.buckets) {
		t.enlarge()
	}

	i := t.bucket(key)
	for e := t.buckets[i]; e != nil; e = e.next {
		if t.equal(e.key, key) {
			e.key = key
			e.value = value
			return
		}
	}

	t.buckets[i] = &entry[K, V]{key: key, value: value, next: t.buckets[i]}
	t.entries++
}

// Lookup returns the value stored under key and whether it was present.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	for e := t.buckets[t.bucket(key)]; e != nil; e = e.next {
		if t.equal(e.key, key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Remove deletes the entry stored under key, reporting whether an entry
// was removed.
func (t *Table[K, V]) Remove(key K) bool {
	i := t.bucket(key)
	for p := &t.buckets[i]; *p != nil; p = &(*p).next {
		if t.equal((*p).key, key) {
			*p = (*p).next
			t.entries--
			return true
		}
	}
	return false
}

// All returns an iterator over every key/value pair in the table, in no
// particular order, for use with a range statement. The table must not be
// modified during iteration.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range t.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
