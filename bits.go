package patricia

// Low-level bit fiddling on key prefixes and branching masks. Everything
// in this file is branch-free unsigned arithmetic; correctness of the
// engine hinges on `shorter` using *unsigned* comparison.

// Word is the set of key widths the trie engine can be instantiated with.
type Word interface {
	~uint32 | ~uint64
}

// Branching convention: big-endian tries branch on the most significant
// differing bit, which makes in-order traversal produce ascending key
// order. The little-endian mirror has never been implemented; selecting
// it fails fast instead of silently producing wrong trees.
const bigEndian = true

// branchingBit returns a word with exactly one bit set: the highest-order
// bit at which p0 and p1 differ. p0 and p1 must not be equal.
func branchingBit[W Word](p0, p1 W) W {
	assertThat(bigEndian, "little-endian branching is not implemented")
	x := p0 ^ p1
	x |= x >> 1 // smear the most significant set bit downwards …
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32 // shifts to zero for 32-bit words
	return x ^ (x >> 1) // … then isolate it
}

// prefixMask keeps the bits of key above m's bit, clearing m's bit and
// every bit below it.
func prefixMask[W Word](key, m W) W {
	return key & (^(m - 1) ^ m)
}

// matchPrefix reports whether key belongs into a subtree with the given
// prefix and branching bit.
func matchPrefix[W Word](key, prefix, m W) bool {
	return prefixMask(key, m) == prefix
}

// zeroBit reports whether key has a zero bit at the branching position,
// i.e. whether it belongs into the left subtree.
func zeroBit[W Word](key, m W) bool {
	return key&m == 0
}

// shorter reports whether mask m1 branches closer to the root than m2.
// Under big-endian branching a higher bit means a shorter prefix, so this
// is plain unsigned comparison.
func shorter[W Word](m1, m2 W) bool {
	return m1 > m2
}

// signBit returns the mask of the topmost bit of W.
func signBit[W Word]() W {
	var w W
	return ^(^w >> 1)
}
