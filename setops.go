package patricia

/*
The merge-style operations all follow the same four-way case split:
both trees are branches with aligned prefixes, one branch swallows the
other, the prefixes disagree, or a leaf/empty tree degrades the problem
to insert/lookup/remove. Each case prefers returning one of the input
references over allocating, so that repeated operations on derived trees
keep hitting the pointer-equality short-circuits.
*/

// union merges s and t. f resolves payloads bound to the same key in
// both trees and must not be nil; it is called as f(fromS, fromT). The
// returned flag reports that s and t held equal content.
func union[W Word, V any](s, t node[W, V], f mergeFunc[V]) (node[W, V], bool) {
	if s == t {
		return s, true
	}
	if s == nil {
		return t, false
	}
	if t == nil {
		return s, false
	}

	if lf, ok := t.(*leaf[W, V]); ok {
		// Absorb t's single binding into s. insert hands values over as
		// (new, old) = (fromT, fromS), hence the argument swap.
		res, changed := insert(s, lf.key, lf.value, func(nv, ov V) (V, bool) {
			return f(ov, nv)
		})
		if !changed {
			// s absorbed the binding without change; the trees are equal
			// exactly when s is a single leaf as well.
			_, single := s.(*leaf[W, V])
			return res, single
		}
		return res, false
	}
	if lf, ok := s.(*leaf[W, V]); ok {
		// t is a branch here, so the result can never equal s.
		res, _ := insert(t, lf.key, lf.value, f)
		return res, false
	}

	sb, tb := s.(*branch[W, V]), t.(*branch[W, V])
	switch {
	case sb.mask == tb.mask && sb.prefix == tb.prefix:
		// aligned branches: union children pairwise
		l, leq := union[W, V](sb.left, tb.left, f)
		r, req := union[W, V](sb.right, tb.right, f)
		if leq && req {
			return sb, true
		}
		if (leq || l == sb.left) && (req || r == sb.right) {
			return sb, false
		}
		if (leq || l == tb.left) && (req || r == tb.right) {
			return tb, false
		}
		return &branch[W, V]{sb.prefix, sb.mask, l, r, size[W, V](l) + size[W, V](r)}, false
	case shorter(sb.mask, tb.mask) && sb.match(tb.prefix):
		// t fits entirely into one of s's subtrees
		if zeroBit(tb.prefix, sb.mask) {
			l, _ := union[W, V](sb.left, t, f)
			if l == sb.left {
				return sb, false
			}
			return &branch[W, V]{sb.prefix, sb.mask, l, sb.right, size[W, V](l) + size[W, V](sb.right)}, false
		}
		r, _ := union[W, V](sb.right, t, f)
		if r == sb.right {
			return sb, false
		}
		return &branch[W, V]{sb.prefix, sb.mask, sb.left, r, size[W, V](sb.left) + size[W, V](r)}, false
	case shorter(tb.mask, sb.mask) && tb.match(sb.prefix):
		// s fits entirely into one of t's subtrees
		if zeroBit(sb.prefix, tb.mask) {
			l, _ := union[W, V](s, tb.left, f)
			if l == tb.left {
				return tb, false
			}
			return &branch[W, V]{tb.prefix, tb.mask, l, tb.right, size[W, V](l) + size[W, V](tb.right)}, false
		}
		r, _ := union[W, V](s, tb.right, f)
		if r == tb.right {
			return tb, false
		}
		return &branch[W, V]{tb.prefix, tb.mask, tb.left, r, size[W, V](tb.left) + size[W, V](r)}, false
	default:
		// prefixes disagree: the trees become siblings
		return join[W, V](sb.prefix, s, tb.prefix, t), false
	}
}

// intersect keeps the bindings of s whose keys also appear in t (payloads
// are taken from s). Subtrees without overlap collapse to nil.
func intersect[W Word, V any](s, t node[W, V]) node[W, V] {
	if s == t {
		return s
	}
	if s == nil || t == nil {
		return nil
	}

	if lf, ok := s.(*leaf[W, V]); ok {
		// a singleton intersected with a tree is a membership test
		if findLeaf[W, V](t, lf.key) != nil {
			return s
		}
		return nil
	}
	if lf, ok := t.(*leaf[W, V]); ok {
		if own := findLeaf[W, V](s, lf.key); own != nil {
			return own
		}
		return nil
	}

	sb, tb := s.(*branch[W, V]), t.(*branch[W, V])
	switch {
	case sb.mask == tb.mask && sb.prefix == tb.prefix:
		l := intersect[W, V](sb.left, tb.left)
		r := intersect[W, V](sb.right, tb.right)
		if l == sb.left && r == sb.right {
			return sb
		}
		return br[W, V](sb.prefix, sb.mask, l, r)
	case shorter(sb.mask, tb.mask):
		if !sb.match(tb.prefix) {
			return nil
		}
		if zeroBit(tb.prefix, sb.mask) {
			return intersect[W, V](sb.left, t)
		}
		return intersect[W, V](sb.right, t)
	case shorter(tb.mask, sb.mask):
		if !tb.match(sb.prefix) {
			return nil
		}
		if zeroBit(sb.prefix, tb.mask) {
			return intersect[W, V](s, tb.left)
		}
		return intersect[W, V](s, tb.right)
	default:
		return nil
	}
}

// difference keeps the bindings of s whose keys do not appear in t.
// Not commutative.
func difference[W Word, V any](s, t node[W, V]) node[W, V] {
	if s == t {
		return nil
	}
	if s == nil {
		return nil
	}
	if t == nil {
		return s
	}

	if lf, ok := s.(*leaf[W, V]); ok {
		if findLeaf[W, V](t, lf.key) != nil {
			return nil
		}
		return s
	}
	if lf, ok := t.(*leaf[W, V]); ok {
		return remove[W, V](s, lf.key)
	}

	sb, tb := s.(*branch[W, V]), t.(*branch[W, V])
	switch {
	case sb.mask == tb.mask && sb.prefix == tb.prefix:
		l := difference[W, V](sb.left, tb.left)
		r := difference[W, V](sb.right, tb.right)
		if l == sb.left && r == sb.right {
			return sb
		}
		return br[W, V](sb.prefix, sb.mask, l, r)
	case shorter(sb.mask, tb.mask):
		// t affects at most one of s's subtrees
		if !sb.match(tb.prefix) {
			return sb
		}
		if zeroBit(tb.prefix, sb.mask) {
			l := difference[W, V](sb.left, t)
			if l == sb.left {
				return sb
			}
			return br[W, V](sb.prefix, sb.mask, l, sb.right)
		}
		r := difference[W, V](sb.right, t)
		if r == sb.right {
			return sb
		}
		return br[W, V](sb.prefix, sb.mask, sb.left, r)
	case shorter(tb.mask, sb.mask):
		if !tb.match(sb.prefix) {
			return s
		}
		if zeroBit(sb.prefix, tb.mask) {
			return difference[W, V](s, tb.left)
		}
		return difference[W, V](s, tb.right)
	default:
		return s
	}
}

// subsetCompare classifies the key set of s against that of t:
// -1 ⇒ proper subset, 0 ⇒ equal key sets, +1 ⇒ s holds a key outside t.
func subsetCompare[W Word, V any](s, t node[W, V]) int {
	if s == t {
		return 0
	}
	if s == nil {
		if t == nil {
			return 0
		}
		return -1
	}
	if t == nil {
		return 1
	}

	switch sn := s.(type) {
	case *leaf[W, V]:
		if findLeaf[W, V](t, sn.key) == nil {
			return 1
		}
		if _, single := t.(*leaf[W, V]); single {
			return 0 // one key each, and they match
		}
		return -1
	case *branch[W, V]:
		tb, ok := t.(*branch[W, V])
		if !ok {
			return 1 // a branch holds ≥ 2 keys, a leaf cannot contain it
		}
		switch {
		case shorter(sn.mask, tb.mask):
			return 1 // s spans a wider key range than t
		case shorter(tb.mask, sn.mask):
			if !tb.match(sn.prefix) {
				return 1
			}
			var inner int
			if zeroBit(sn.prefix, tb.mask) {
				inner = subsetCompare[W, V](s, tb.left)
			} else {
				inner = subsetCompare[W, V](s, tb.right)
			}
			if inner == 1 {
				return 1
			}
			return -1 // contained in a strict subtree of t
		case sn.prefix == tb.prefix:
			l := subsetCompare[W, V](sn.left, tb.left)
			r := subsetCompare[W, V](sn.right, tb.right)
			if l == 1 || r == 1 {
				return 1
			}
			if l == 0 && r == 0 {
				return 0
			}
			return -1
		default:
			return 1
		}
	}
	return 1
}

// treeEqual compares content, not shape — though under big-endian
// branching the two coincide. Shared subtrees compare equal without
// descent. eq compares payloads; a nil eq compares keys only.
func treeEqual[W Word, V any](s, t node[W, V], eq func(V, V) bool) bool {
	if s == t {
		return true
	}
	if s == nil || t == nil {
		return false
	}
	switch sn := s.(type) {
	case *leaf[W, V]:
		tn, ok := t.(*leaf[W, V])
		if !ok || sn.key != tn.key {
			return false
		}
		return eq == nil || eq(sn.value, tn.value)
	case *branch[W, V]:
		tn, ok := t.(*branch[W, V])
		if !ok || sn.prefix != tn.prefix || sn.mask != tn.mask || sn.count != tn.count {
			return false
		}
		return treeEqual[W, V](sn.left, tn.left, eq) && treeEqual[W, V](sn.right, tn.right, eq)
	}
	return false
}
