/*
Package patricia implements persistent (immutable) sets and maps of
fixed-width integer keys, backed by big-endian Patricia tries.

Persistent data structures can be copied and modified efficiently, leaving
the original unchanged. Every "mutating" operation on a Set or Map returns
a new incarnation; unchanged subtrees are shared between incarnations, so
copies are cheap in terms of space- and time-complexity. Since nodes are
never modified after construction, any number of incarnations may be read
concurrently without locks.

The tries branch on the most significant bit at which two key prefixes
diverge (the big-endian convention of Okasaki & Gill, "Fast Mergeable
Integer Maps"). A pleasant consequence is that in-order traversal yields
keys in ascending unsigned order, and that the set-algebra operations
(union, intersection, difference, subset tests) run recursively over
aligned subtrees, skipping shared ones in constant time.

Both 32-bit and 64-bit key widths are supported through a single generic
implementation, so the two widths cannot drift apart in behavior:

	s := patricia.SetOf[uint32](5, 3, 11)
	s = s.With(17).Without(3)
	t := patricia.SetOf[uint32](5, 17)
	t.SubsetOf(s)                       // ⇒ true

Sub-package hashmap builds a persistent map for arbitrary key types on top
of the 32-bit trie by hashing keys; sub-package omap provides the ordered
map used to resolve hash collisions.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package patricia

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patricia'.
func tracer() tracing.Trace {
	return tracing.Select("patricia")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("patricia: "+msg, msgargs...)
		panic(msg)
	}
}
