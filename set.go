package patricia

import (
	"fmt"
	"iter"
	"strings"
)

// Set is a persistent set of fixed-width integer keys. The zero value is
// an empty set, ready to use:
//
//	s := patricia.Set[uint64]{}.With(42)
//
// Sets are value types; copying one is cheap and safe, and every mutator
// returns a new incarnation, reusing the existing trie when no change
// occurred.
type Set[W Word] struct {
	root node[W, struct{}]
}

// SetOf builds a set from the given keys.
func SetOf[W Word](keys ...W) Set[W] {
	var s Set[W]
	for _, key := range keys {
		s = s.With(key)
	}
	return s
}

// Contains reports set membership of key.
func (s Set[W]) Contains(key W) bool {
	return findLeaf[W, struct{}](s.root, key) != nil
}

// With returns a set that additionally contains key. Adding a present
// key is a no-op returning the receiver unchanged, trie reference
// included.
func (s Set[W]) With(key W) Set[W] {
	root, changed := insert(s.root, key, struct{}{}, keepExisting[struct{}])
	if changed {
		tracer().Debugf("set: added key %d", key)
	}
	s.root = root
	return s
}

// Without returns a set with key removed. Removing an absent key returns
// the receiver unchanged.
func (s Set[W]) Without(key W) Set[W] {
	s.root = remove[W, struct{}](s.root, key)
	return s
}

// --- Set algebra -----------------------------------------------------------

// Union returns the set of keys present in either set. Shared subtrees
// are skipped, so s.Union(s) is O(1).
func (s Set[W]) Union(other Set[W]) Set[W] {
	s.root, _ = union[W, struct{}](s.root, other.root, keepExisting[struct{}])
	return s
}

// Intersect returns the set of keys present in both sets.
func (s Set[W]) Intersect(other Set[W]) Set[W] {
	s.root = intersect[W, struct{}](s.root, other.root)
	return s
}

// Difference returns the set of keys present in s but not in other.
func (s Set[W]) Difference(other Set[W]) Set[W] {
	s.root = difference[W, struct{}](s.root, other.root)
	return s
}

// SubsetOf reports whether every key of s is contained in other.
func (s Set[W]) SubsetOf(other Set[W]) bool {
	return subsetCompare[W, struct{}](s.root, other.root) <= 0
}

// ProperSubsetOf reports whether s is a subset of other and other holds
// at least one additional key.
func (s Set[W]) ProperSubsetOf(other Set[W]) bool {
	return subsetCompare[W, struct{}](s.root, other.root) < 0
}

// SupersetOf reports whether every key of other is contained in s.
func (s Set[W]) SupersetOf(other Set[W]) bool {
	return other.SubsetOf(s)
}

// Equal reports whether both sets contain exactly the same keys.
func (s Set[W]) Equal(other Set[W]) bool {
	return treeEqual[W, struct{}](s.root, other.root, nil)
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of keys in the set, in O(1).
func (s Set[W]) Len() int {
	return size[W, struct{}](s.root)
}

// IsEmpty reports whether the set holds no keys.
func (s Set[W]) IsEmpty() bool {
	return s.root == nil
}

// Min returns the smallest key in unsigned order. Panics on an empty set.
func (s Set[W]) Min() W {
	return minLeaf[W, struct{}](s.root).key
}

// Max returns the largest key in unsigned order. Panics on an empty set.
func (s Set[W]) Max() W {
	return maxLeaf[W, struct{}](s.root).key
}

// MinSigned returns the smallest key when keys are interpreted as
// two's-complement signed numbers. Panics on an empty set.
func (s Set[W]) MinSigned() W {
	return minLeafSigned[W, struct{}](s.root).key
}

// MaxSigned returns the largest key under signed interpretation.
// Panics on an empty set.
func (s Set[W]) MaxSigned() W {
	return maxLeafSigned[W, struct{}](s.root).key
}

// --- Enumeration -----------------------------------------------------------

// All returns an iterator over the keys in ascending unsigned order.
// The iterator may be re-used; it always starts from scratch.
func (s Set[W]) All() iter.Seq[W] {
	return func(yield func(W) bool) {
		ascend(s.root, func(key W, _ struct{}) bool {
			return yield(key)
		})
	}
}

// Descending returns an iterator over the keys in descending unsigned order.
func (s Set[W]) Descending() iter.Seq[W] {
	return func(yield func(W) bool) {
		descend(s.root, func(key W, _ struct{}) bool {
			return yield(key)
		})
	}
}

// ForEach calls f once per key, in ascending unsigned order.
func (s Set[W]) ForEach(f func(W)) {
	ascend(s.root, func(key W, _ struct{}) bool {
		f(key)
		return true
	})
}

// ToSlice returns the keys as a fresh slice in ascending unsigned order.
func (s Set[W]) ToSlice() []W {
	keys := make([]W, 0, s.Len())
	s.ForEach(func(key W) {
		keys = append(keys, key)
	})
	return keys
}

// --- Bulk transformation ---------------------------------------------------

// Filter returns the set of keys satisfying pred. Implemented as a fold
// over the receiver; filtering is not on the hot path.
func (s Set[W]) Filter(pred func(W) bool) Set[W] {
	var out Set[W]
	s.ForEach(func(key W) {
		if pred(key) {
			out = out.With(key)
		}
	})
	return out
}

// Partition splits the set into the keys satisfying pred and the rest.
func (s Set[W]) Partition(pred func(W) bool) (yes Set[W], no Set[W]) {
	s.ForEach(func(key W) {
		if pred(key) {
			yes = yes.With(key)
		} else {
			no = no.With(key)
		}
	})
	return yes, no
}

func (s Set[W]) String() string {
	b := strings.Builder{}
	b.WriteString("set{")
	first := true
	s.ForEach(func(key W) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%d", key))
	})
	b.WriteByte('}')
	return b.String()
}

// --- Package-level helpers -------------------------------------------------

// Methods cannot introduce type parameters, therefore the type-changing
// operations live as package-level functions (compare maybe.AndThen et al.
// in functional libraries).

// FoldSet folds f over the keys of s in ascending unsigned order.
func FoldSet[W Word, A any](s Set[W], seed A, f func(A, W) A) A {
	acc := seed
	ascend(s.root, func(key W, _ struct{}) bool {
		acc = f(acc, key)
		return true
	})
	return acc
}

// FoldSetBack folds f over the keys of s in descending unsigned order.
func FoldSetBack[W Word, A any](s Set[W], seed A, f func(A, W) A) A {
	acc := seed
	descend(s.root, func(key W, _ struct{}) bool {
		acc = f(acc, key)
		return true
	})
	return acc
}

// MapSet maps every key of s through f, collecting the results into a
// new set (which may be smaller than s if f is not injective).
func MapSet[W, X Word](s Set[W], f func(W) X) Set[X] {
	var out Set[X]
	s.ForEach(func(key W) {
		out = out.With(f(key))
	})
	return out
}

// ChooseSet combines filtering and mapping: keys for which f reports ok
// survive, mapped through f.
func ChooseSet[W, X Word](s Set[W], f func(W) (X, bool)) Set[X] {
	var out Set[X]
	s.ForEach(func(key W) {
		if x, ok := f(key); ok {
			out = out.With(x)
		}
	})
	return out
}
