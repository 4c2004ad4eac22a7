package patricia

// Traversal uses an explicit LIFO work-stack instead of native recursion.
// Structural operations recurse at most key-width deep, but a traversal
// callback multiplies every frame, so all widths walk iteratively.

// ascend visits every binding in ascending unsigned key order until the
// visitor declines. Reports whether the walk ran to completion.
func ascend[W Word, V any](n node[W, V], visit func(W, V) bool) bool {
	if n == nil {
		return true
	}
	stack := make([]node[W, V], 0, 64)
	stack = append(stack, n)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := top.(type) {
		case *leaf[W, V]:
			if !visit(t.key, t.value) {
				return false
			}
		case *branch[W, V]:
			stack = append(stack, t.right, t.left) // left pops first
		}
	}
	return true
}

// descend is ascend's mirror: descending unsigned key order.
func descend[W Word, V any](n node[W, V], visit func(W, V) bool) bool {
	if n == nil {
		return true
	}
	stack := make([]node[W, V], 0, 64)
	stack = append(stack, n)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := top.(type) {
		case *leaf[W, V]:
			if !visit(t.key, t.value) {
				return false
			}
		case *branch[W, V]:
			stack = append(stack, t.left, t.right) // right pops first
		}
	}
	return true
}

// minLeaf returns the leaf with the smallest key in unsigned order.
// Panics on an empty tree.
func minLeaf[W Word, V any](n node[W, V]) *leaf[W, V] {
	assertThat(n != nil, "collection is empty")
	for {
		switch t := n.(type) {
		case *leaf[W, V]:
			return t
		case *branch[W, V]:
			n = t.left
		}
	}
}

// maxLeaf returns the leaf with the largest key in unsigned order.
// Panics on an empty tree.
func maxLeaf[W Word, V any](n node[W, V]) *leaf[W, V] {
	assertThat(n != nil, "collection is empty")
	for {
		switch t := n.(type) {
		case *leaf[W, V]:
			return t
		case *branch[W, V]:
			n = t.right
		}
	}
}

// minLeafSigned interprets keys as two's-complement signed numbers.
// Negative keys carry the sign bit and therefore sort *high* in unsigned
// order; when the root branches on the sign bit, the right subtree holds
// the signed minimum. Below the sign bit all keys share their sign, and
// unsigned order coincides with signed order.
func minLeafSigned[W Word, V any](n node[W, V]) *leaf[W, V] {
	assertThat(n != nil, "collection is empty")
	if b, ok := n.(*branch[W, V]); ok && b.mask == signBit[W]() {
		return minLeaf[W, V](b.right)
	}
	return minLeaf[W, V](n)
}

// maxLeafSigned is minLeafSigned's mirror.
func maxLeafSigned[W Word, V any](n node[W, V]) *leaf[W, V] {
	assertThat(n != nil, "collection is empty")
	if b, ok := n.(*branch[W, V]); ok && b.mask == signBit[W]() {
		return maxLeaf[W, V](b.left)
	}
	return maxLeaf[W, V](n)
}
