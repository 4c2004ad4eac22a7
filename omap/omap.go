package omap

import (
	"iter"
	"sort"
)

// Map is a persistent ordered map. Keys are kept sorted by a comparison
// function supplied at construction time; create instances with New or
// Singleton. Map is a value type: mutators return a new incarnation and
// never touch the receiver's backing array.
type Map[K, V any] struct {
	cmp   func(K, K) int
	pairs []pair[K, V]
}

type pair[K, V any] struct {
	key   K
	value V
}

// New returns an empty map ordered by cmp. cmp must return a negative
// number, zero, or a positive number for a < b, a == b, a > b.
func New[K, V any](cmp func(a, b K) int) Map[K, V] {
	assertThat(cmp != nil, "ordered map needs a comparator")
	return Map[K, V]{cmp: cmp}
}

// Singleton returns a map ordered by cmp holding a single binding.
func Singleton[K, V any](cmp func(a, b K) int, key K, value V) Map[K, V] {
	m := New[K, V](cmp)
	m.pairs = []pair[K, V]{{key, value}}
	return m
}

// search locates key's slot in the sorted backing array.
func (m Map[K, V]) search(key K) (at int, found bool) {
	assertThat(m.cmp != nil, "ordered map needs a comparator (use New)")
	at = sort.Search(len(m.pairs), func(i int) bool {
		return m.cmp(m.pairs[i].key, key) >= 0
	})
	found = at < len(m.pairs) && m.cmp(m.pairs[at].key, key) == 0
	return
}

// Len returns the number of bindings.
func (m Map[K, V]) Len() int {
	return len(m.pairs)
}

// IsEmpty reports whether the map holds no bindings.
func (m Map[K, V]) IsEmpty() bool {
	return len(m.pairs) == 0
}

// Find returns the value bound to key, with a flag reporting presence.
func (m Map[K, V]) Find(key K) (V, bool) {
	if at, found := m.search(key); found {
		return m.pairs[at].value, true
	}
	var none V
	return none, false
}

// With returns a map with key bound to value, overwriting an existing
// binding for key.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	at, found := m.search(key)
	if found {
		cow := make([]pair[K, V], len(m.pairs))
		copy(cow, m.pairs)
		cow[at].value = value
		m.pairs = cow
		return m
	}
	tracer().Debugf("omap: inserting key %v at slot %d", key, at)
	cow := make([]pair[K, V], 0, len(m.pairs)+1)
	cow = append(cow, m.pairs[:at]...)
	cow = append(cow, pair[K, V]{key, value})
	cow = append(cow, m.pairs[at:]...)
	m.pairs = cow
	return m
}

// Without returns a map with the binding for key removed. Removing an
// absent key returns the receiver unchanged, backing array included.
func (m Map[K, V]) Without(key K) Map[K, V] {
	at, found := m.search(key)
	if !found {
		return m
	}
	if len(m.pairs) == 1 {
		m.pairs = nil
		return m
	}
	cow := make([]pair[K, V], 0, len(m.pairs)-1)
	cow = append(cow, m.pairs[:at]...)
	cow = append(cow, m.pairs[at+1:]...)
	m.pairs = cow
	return m
}

// Min returns the binding with the smallest key. Panics on an empty map.
func (m Map[K, V]) Min() (K, V) {
	assertThat(len(m.pairs) > 0, "collection is empty")
	p := m.pairs[0]
	return p.key, p.value
}

// Max returns the binding with the largest key. Panics on an empty map.
func (m Map[K, V]) Max() (K, V) {
	assertThat(len(m.pairs) > 0, "collection is empty")
	p := m.pairs[len(m.pairs)-1]
	return p.key, p.value
}

// ForEach calls f once per binding, in ascending key order.
func (m Map[K, V]) ForEach(f func(K, V)) {
	for _, p := range m.pairs {
		f(p.key, p.value)
	}
}

// All returns an iterator over the bindings in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range m.pairs {
			if !yield(p.key) {
				return
			}
		}
	}
}

// Fold folds f over the bindings in ascending key order.
func Fold[K, V, A any](m Map[K, V], seed A, f func(A, K, V) A) A {
	acc := seed
	for _, p := range m.pairs {
		acc = f(acc, p.key, p.value)
	}
	return acc
}
