/*
Package hashmap implements a persistent map for arbitrary key types,
layered on top of the 32-bit Patricia trie of the parent package.

Keys are hashed to 32-bit integers and the trie is keyed by that hash;
keys colliding on the same hash share a trie leaf, whose payload is a
small ordered map (package omap) keyed by the original keys. This is the
usual chained-bucket collision strategy, with a trie in place of a flat
bucket array — trading a little locality for structural sharing and
cheap merging of whole maps.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package hashmap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patricia.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("patricia.hashmap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashmap: "+msg, msgargs...)
		panic(msg)
	}
}
