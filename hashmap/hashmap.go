package hashmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/patricia"
	"github.com/npillmayer/patricia/omap"
)

// Hasher provides hashing and ordering for a key type K. Hash values of
// keys must not change while they are stored in a map, and Compare must
// be a total order consistent with key identity (Compare(a, b) == 0 iff
// a and b denote the same key).
type Hasher[K any] interface {
	Hash(key K) uint32
	Compare(a, b K) int
}

// Map is a persistent map from keys of an arbitrary type to values.
// Create instances with New; mutators return a new incarnation with
// maximal structural sharing, leaving the receiver unchanged.
type Map[K, V any] struct {
	hasher Hasher[K]
	trie   patricia.Map[uint32, omap.Map[K, V]]
	length int
}

// New constructs an empty persistent map with the specified hasher.
// The order of the type parameters lets K be inferred from the argument:
//
//	m := hashmap.New[int](hashmap.StringHasher{})   // Map[string, int]
func New[V, K any](hasher Hasher[K]) Map[K, V] {
	assertThat(hasher != nil, "hash map needs a hasher")
	return Map[K, V]{hasher: hasher}
}

// Find returns the value bound to key. Absence is a valid outcome,
// reported through the flag.
func (m Map[K, V]) Find(key K) (V, bool) {
	if m.hasher == nil {
		var none V
		return none, false
	}
	b, ok := m.trie.Find(m.hasher.Hash(key))
	if !ok {
		var none V
		return none, false
	}
	return b.Find(key)
}

// Contains reports whether key is bound in the map.
func (m Map[K, V]) Contains(key K) bool {
	_, found := m.Find(key)
	return found
}

// With returns a map with key bound to value, overwriting an existing
// binding for key.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	assertThat(m.hasher != nil, "hash map needs a hasher (use New)")
	h := m.hasher.Hash(key)
	b, ok := m.trie.Find(h)
	if !ok {
		m.trie = m.trie.With(h, omap.Singleton(m.hasher.Compare, key, value))
		m.length++
		return m
	}
	if b.Len() > 1 {
		tracer().Debugf("bucket for hash %#x holds %d colliding keys", h, b.Len())
	}
	grown := b.With(key, value)
	if grown.Len() > b.Len() {
		m.length++
	}
	m.trie = m.trie.With(h, grown)
	return m
}

// WithIfAbsent returns a map with key bound to value, unless key is
// already bound: then the receiver is returned unchanged, trie reference
// included.
func (m Map[K, V]) WithIfAbsent(key K, value V) Map[K, V] {
	if m.Contains(key) {
		return m
	}
	return m.With(key, value)
}

// Without returns a map with the binding for key removed. Removing the
// last binding of a hash bucket removes the bucket's leaf from the trie
// altogether, so empty buckets never linger.
func (m Map[K, V]) Without(key K) Map[K, V] {
	if m.hasher == nil {
		return m
	}
	h := m.hasher.Hash(key)
	b, ok := m.trie.Find(h)
	if !ok {
		return m
	}
	shrunk := b.Without(key)
	if shrunk.Len() == b.Len() {
		return m // key was not in its bucket
	}
	m.length--
	if shrunk.IsEmpty() {
		m.trie = m.trie.Without(h)
	} else {
		m.trie = m.trie.With(h, shrunk)
	}
	return m
}

// Union merges the bindings of both maps. For keys bound in both, merge
// decides: it receives the receiver's value first. A nil merge keeps the
// receiver's value. Both maps must use the same hasher semantics.
func (m Map[K, V]) Union(other Map[K, V], merge func(a, b V) V) Map[K, V] {
	res := m
	other.ForEach(func(key K, value V) {
		if own, ok := res.Find(key); ok {
			if merge != nil {
				res = res.With(key, merge(own, value))
			}
		} else {
			res = res.With(key, value)
		}
	})
	return res
}

// Len returns the number of bindings, in O(1).
func (m Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the map holds no bindings.
func (m Map[K, V]) IsEmpty() bool {
	return m.length == 0
}

// ForEach calls f once per binding. Order follows ascending hash values,
// then bucket key order; it is stable but otherwise unspecified.
func (m Map[K, V]) ForEach(f func(K, V)) {
	m.trie.ForEach(func(_ uint32, b omap.Map[K, V]) {
		b.ForEach(f)
	})
}

// All returns an iterator over the bindings, in the order of ForEach.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range m.trie.All() {
			for k, v := range b.All() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the keys, in the order of ForEach.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m Map[K, V]) String() string {
	b := strings.Builder{}
	b.WriteString("hashmap{")
	first := true
	m.ForEach(func(key K, value V) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v↦%v", key, value))
	})
	b.WriteByte('}')
	return b.String()
}

// Fold folds f over the bindings of m, in the order of ForEach.
func Fold[K, V, A any](m Map[K, V], seed A, f func(A, K, V) A) A {
	acc := seed
	m.ForEach(func(key K, value V) {
		acc = f(acc, key, value)
	})
	return acc
}
