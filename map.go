package patricia

import (
	"fmt"
	"iter"
	"strings"
)

// Map is a persistent map from fixed-width integer keys to values of an
// arbitrary type. The zero value is an empty map, ready to use:
//
//	m := patricia.Map[uint32, string]{}.With(42, "Galaxy")
//
// Like Set, Map is a value type with structural sharing between
// incarnations.
type Map[W Word, V any] struct {
	root node[W, V]
}

// Pair is a key/value binding, used for bulk conversion.
type Pair[W Word, V any] struct {
	Key   W
	Value V
}

// MapOf builds a map from the given bindings. Later bindings for the
// same key overwrite earlier ones.
func MapOf[W Word, V any](pairs ...Pair[W, V]) Map[W, V] {
	var m Map[W, V]
	for _, p := range pairs {
		m = m.With(p.Key, p.Value)
	}
	return m
}

// Find returns the value bound to key. Absence is a valid outcome,
// reported through the flag.
func (m Map[W, V]) Find(key W) (V, bool) {
	return lookup[W, V](m.root, key)
}

// Get returns the value bound to key and panics when key is absent. Use
// Find when absence is an expected outcome.
func (m Map[W, V]) Get(key W) V {
	v, ok := lookup[W, V](m.root, key)
	assertThat(ok, "key %v not found in map", key)
	return v
}

// Contains reports whether key is bound in the map.
func (m Map[W, V]) Contains(key W) bool {
	return findLeaf[W, V](m.root, key) != nil
}

// With returns a map with key bound to value. An existing binding for
// key is overwritten.
func (m Map[W, V]) With(key W, value V) Map[W, V] {
	m.root, _ = insert(m.root, key, value, nil)
	return m
}

// WithIfAbsent returns a map with key bound to value, unless key is
// already bound: then the receiver is returned unchanged, trie reference
// included.
func (m Map[W, V]) WithIfAbsent(key W, value V) Map[W, V] {
	m.root, _ = insert(m.root, key, value, keepExisting[V])
	return m
}

// Without returns a map with the binding for key removed. Removing an
// absent key returns the receiver unchanged.
func (m Map[W, V]) Without(key W) Map[W, V] {
	m.root = remove[W, V](m.root, key)
	return m
}

// Union merges the bindings of both maps. For keys bound in both, merge
// decides: it receives the receiver's value first. A nil merge keeps the
// receiver's value.
func (m Map[W, V]) Union(other Map[W, V], merge func(a, b V) V) Map[W, V] {
	f := func(a, b V) (V, bool) {
		if merge == nil {
			return a, false
		}
		return merge(a, b), false
	}
	m.root, _ = union[W, V](m.root, other.root, f)
	return m
}

// Equal reports whether both maps hold the same bindings, comparing
// values with eq. A nil eq compares keys only.
func (m Map[W, V]) Equal(other Map[W, V], eq func(V, V) bool) bool {
	return treeEqual[W, V](m.root, other.root, eq)
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of bindings, in O(1).
func (m Map[W, V]) Len() int {
	return size[W, V](m.root)
}

// IsEmpty reports whether the map holds no bindings.
func (m Map[W, V]) IsEmpty() bool {
	return m.root == nil
}

// Min returns the binding with the smallest key in unsigned order.
// Panics on an empty map.
func (m Map[W, V]) Min() (W, V) {
	lf := minLeaf[W, V](m.root)
	return lf.key, lf.value
}

// Max returns the binding with the largest key in unsigned order.
// Panics on an empty map.
func (m Map[W, V]) Max() (W, V) {
	lf := maxLeaf[W, V](m.root)
	return lf.key, lf.value
}

// MinSigned returns the binding with the smallest key under signed
// interpretation. Panics on an empty map.
func (m Map[W, V]) MinSigned() (W, V) {
	lf := minLeafSigned[W, V](m.root)
	return lf.key, lf.value
}

// MaxSigned returns the binding with the largest key under signed
// interpretation. Panics on an empty map.
func (m Map[W, V]) MaxSigned() (W, V) {
	lf := maxLeafSigned[W, V](m.root)
	return lf.key, lf.value
}

// --- Enumeration -----------------------------------------------------------

// All returns an iterator over the bindings in ascending unsigned key
// order. The iterator may be re-used; it always starts from scratch.
func (m Map[W, V]) All() iter.Seq2[W, V] {
	return func(yield func(W, V) bool) {
		ascend(m.root, yield)
	}
}

// Descending returns an iterator over the bindings in descending
// unsigned key order.
func (m Map[W, V]) Descending() iter.Seq2[W, V] {
	return func(yield func(W, V) bool) {
		descend(m.root, yield)
	}
}

// Keys returns an iterator over the keys in ascending unsigned order.
func (m Map[W, V]) Keys() iter.Seq[W] {
	return func(yield func(W) bool) {
		ascend(m.root, func(key W, _ V) bool {
			return yield(key)
		})
	}
}

// Values returns an iterator over the values, in ascending order of
// their keys.
func (m Map[W, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		ascend(m.root, func(_ W, value V) bool {
			return yield(value)
		})
	}
}

// ForEach calls f once per binding, in ascending unsigned key order.
func (m Map[W, V]) ForEach(f func(W, V)) {
	ascend(m.root, func(key W, value V) bool {
		f(key, value)
		return true
	})
}

// ToSlice returns the bindings as a fresh slice in ascending unsigned
// key order.
func (m Map[W, V]) ToSlice() []Pair[W, V] {
	pairs := make([]Pair[W, V], 0, m.Len())
	m.ForEach(func(key W, value V) {
		pairs = append(pairs, Pair[W, V]{key, value})
	})
	return pairs
}

// --- Bulk transformation ---------------------------------------------------

// Filter returns a map with the bindings satisfying pred. Implemented as
// a fold over the receiver; filtering is not on the hot path.
func (m Map[W, V]) Filter(pred func(W, V) bool) Map[W, V] {
	var out Map[W, V]
	m.ForEach(func(key W, value V) {
		if pred(key, value) {
			out = out.With(key, value)
		}
	})
	return out
}

// Partition splits the map into the bindings satisfying pred and the rest.
func (m Map[W, V]) Partition(pred func(W, V) bool) (yes Map[W, V], no Map[W, V]) {
	m.ForEach(func(key W, value V) {
		if pred(key, value) {
			yes = yes.With(key, value)
		} else {
			no = no.With(key, value)
		}
	})
	return yes, no
}

func (m Map[W, V]) String() string {
	b := strings.Builder{}
	b.WriteString("map{")
	first := true
	m.ForEach(func(key W, value V) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%d↦%v", key, value))
	})
	b.WriteByte('}')
	return b.String()
}

// --- Package-level helpers -------------------------------------------------

// FoldMap folds f over the bindings of m in ascending unsigned key order.
func FoldMap[W Word, V, A any](m Map[W, V], seed A, f func(A, W, V) A) A {
	acc := seed
	ascend(m.root, func(key W, value V) bool {
		acc = f(acc, key, value)
		return true
	})
	return acc
}

// FoldMapBack folds f over the bindings of m in descending unsigned key
// order.
func FoldMapBack[W Word, V, A any](m Map[W, V], seed A, f func(A, W, V) A) A {
	acc := seed
	descend(m.root, func(key W, value V) bool {
		acc = f(acc, key, value)
		return true
	})
	return acc
}

// MapValues maps every binding of m through f, keeping the keys.
func MapValues[W Word, V, U any](m Map[W, V], f func(W, V) U) Map[W, U] {
	var out Map[W, U]
	m.ForEach(func(key W, value V) {
		out = out.With(key, f(key, value))
	})
	return out
}

// ChooseMap combines filtering and mapping: bindings for which f reports
// ok survive, mapped through f.
func ChooseMap[W Word, V, U any](m Map[W, V], f func(W, V) (U, bool)) Map[W, U] {
	var out Map[W, U]
	m.ForEach(func(key W, value V) {
		if u, ok := f(key, value); ok {
			out = out.With(key, u)
		}
	})
	return out
}

// MapPartition splits m by f: bindings for which f reports ok end up
// mapped in the first result, the remaining bindings survive unmapped in
// the second.
func MapPartition[W Word, V, U any](m Map[W, V], f func(W, V) (U, bool)) (Map[W, U], Map[W, V]) {
	var chosen Map[W, U]
	var rest Map[W, V]
	m.ForEach(func(key W, value V) {
		if u, ok := f(key, value); ok {
			chosen = chosen.With(key, u)
		} else {
			rest = rest.With(key, value)
		}
	})
	return chosen, rest
}
