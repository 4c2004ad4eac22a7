package patricia

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the trie structure of the set for debugging and test logs.
func (s Set[W]) Dump() string {
	printer := tp.New()
	ppn[W, struct{}](printer, s.root, false)
	return printer.String()
}

// Dump renders the trie structure of the map for debugging and test logs.
func (m Map[W, V]) Dump() string {
	printer := tp.New()
	ppn[W, V](printer, m.root, true)
	return printer.String()
}

func ppn[W Word, V any](printer tp.Tree, n node[W, V], withValues bool) {
	switch t := n.(type) {
	case nil:
		printer.AddNode("·")
	case *leaf[W, V]:
		if withValues {
			printer.AddNode(fmt.Sprintf("⟨%#x⟩ ↦ %v", uint64(t.key), t.value))
		} else {
			printer.AddNode(fmt.Sprintf("⟨%#x⟩", uint64(t.key)))
		}
	case *branch[W, V]:
		b := printer.AddBranch(fmt.Sprintf("(%#x/%#x #%d)", uint64(t.prefix), uint64(t.mask), t.count))
		ppn[W, V](b, t.left, withValues)
		ppn[W, V](b, t.right, withValues)
	}
}
