package patricia

/*
Remarks:
--------

- A nil node is the canonical empty tree. Using nil (instead of a sentinel
  value) makes the pervasive "return the input node if nothing changed"
  discipline a plain pointer comparison.

- No branch ever points at an empty child; the smart constructor `br`
  collapses such branches by promoting the surviving sibling.

- The engine is based on Okasaki & Gill, "Fast Mergeable Integer Maps"
  (ML Workshop '98).
*/

// node is the recursive tree type of the engine: nil (empty), a *leaf
// holding a single binding, or a *branch splitting its key space at a
// single bit.
type node[W Word, V any] interface {
	size() int
}

// leaf is a single key/payload binding.
type leaf[W Word, V any] struct {
	key   W
	value V
}

// branch is an internal node. prefix holds the bits all keys below have
// in common, with mask's bit and everything beneath it cleared; mask has
// exactly one bit set, the position where left and right diverge. Keys
// with a zero bit at mask live in left. count caches the subtree size.
type branch[W Word, V any] struct {
	prefix W
	mask   W
	left   node[W, V]
	right  node[W, V]
	count  int
}

func (l *leaf[W, V]) size() int   { return 1 }
func (b *branch[W, V]) size() int { return b.count }

// match reports whether key belongs into the branch's subtree.
func (b *branch[W, V]) match(key W) bool {
	return matchPrefix(key, b.prefix, b.mask)
}

func size[W Word, V any](n node[W, V]) int {
	if n == nil {
		return 0
	}
	return n.size()
}

// br is the smart branch constructor: an empty child never survives, the
// sibling is promoted in its place.
func br[W Word, V any](prefix, mask W, left, right node[W, V]) node[W, V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return &branch[W, V]{prefix, mask, left, right, size[W, V](left) + size[W, V](right)}
}

// join makes two trees with diverging prefixes p0 and p1 siblings under a
// fresh branch, oriented by the branching bit.
func join[W Word, V any](p0 W, t0 node[W, V], p1 W, t1 node[W, V]) node[W, V] {
	m := branchingBit(p0, p1)
	prefix := prefixMask(p0, m)
	sz := size[W, V](t0) + size[W, V](t1)
	if zeroBit(p0, m) {
		return &branch[W, V]{prefix, m, t0, t1, sz}
	}
	return &branch[W, V]{prefix, m, t1, t0, sz}
}

// findLeaf descends to the leaf holding key, or nil if key is absent.
// Iterative; the descent is bounded by the key width anyway.
func findLeaf[W Word, V any](n node[W, V], key W) *leaf[W, V] {
	for n != nil {
		switch t := n.(type) {
		case *leaf[W, V]:
			if t.key == key {
				return t
			}
			return nil
		case *branch[W, V]:
			if !t.match(key) {
				return nil
			}
			if zeroBit(key, t.mask) {
				n = t.left
			} else {
				n = t.right
			}
		}
	}
	return nil
}

// lookup returns the payload bound to key. Absence is a valid outcome,
// reported through the flag.
func lookup[W Word, V any](n node[W, V], key W) (V, bool) {
	if lf := findLeaf[W, V](n, key); lf != nil {
		return lf.value, true
	}
	var none V
	return none, false
}

// mergeFunc combines a value being inserted with an existing one. The
// flag reports that the result equals the existing value, which lets
// insert hand back the existing node and keep subtrees shared.
type mergeFunc[V any] func(newValue, oldValue V) (V, bool)

// keepExisting is the merge policy of sets and of WithIfAbsent: a present
// binding always survives unchanged.
func keepExisting[V any](_, old V) (V, bool) {
	return old, true
}

// insert binds key to value. A nil merge function overwrites an existing
// binding; otherwise f decides. The returned flag is false iff the result
// is the input node, by reference.
func insert[W Word, V any](n node[W, V], key W, value V, f mergeFunc[V]) (node[W, V], bool) {
	if n == nil {
		return &leaf[W, V]{key, value}, true
	}
	var prefix W
	switch t := n.(type) {
	case *leaf[W, V]:
		if t.key == key {
			v := value
			if f != nil {
				var same bool
				if v, same = f(value, t.value); same {
					return t, false
				}
			}
			return &leaf[W, V]{key, v}, true
		}
		prefix = t.key
	case *branch[W, V]:
		if t.match(key) {
			l, r := t.left, t.right
			var changed bool
			if zeroBit(key, t.mask) {
				l, changed = insert(l, key, value, f)
			} else {
				r, changed = insert(r, key, value, f)
			}
			if !changed {
				return t, false
			}
			return &branch[W, V]{t.prefix, t.mask, l, r, size[W, V](l) + size[W, V](r)}, true
		}
		prefix = t.prefix
	}
	// key's prefix diverges from this subtree: graft a fresh leaf beside it
	return join[W, V](key, node[W, V](&leaf[W, V]{key, value}), prefix, n), true
}

// remove deletes the binding for key, collapsing a branch whose child
// empties out. Removing an absent key returns the input node unchanged,
// by reference.
func remove[W Word, V any](n node[W, V], key W) node[W, V] {
	if n == nil {
		return nil
	}
	switch t := n.(type) {
	case *leaf[W, V]:
		if t.key == key {
			return nil
		}
	case *branch[W, V]:
		if t.match(key) {
			if zeroBit(key, t.mask) {
				l := remove[W, V](t.left, key)
				if l == t.left {
					return t
				}
				return br[W, V](t.prefix, t.mask, l, t.right)
			}
			r := remove[W, V](t.right, key)
			if r == t.right {
				return t
			}
			return br[W, V](t.prefix, t.mask, t.left, r)
		}
	}
	return n
}
