/*
Package omap implements a small persistent ordered map over a sorted
array of key/value pairs.

It exists primarily as the collision-bucket resolver of package hashmap,
where a bucket rarely holds more than one or two pairs, but it is usable
standalone wherever a tiny immutable map with a caller-supplied ordering
is convenient. Mutators copy the backing array, leaving the original map
untouched.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package omap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patricia.omap'.
func tracer() tracing.Trace {
	return tracing.Select("patricia.omap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("omap: "+msg, msgargs...)
		panic(msg)
	}
}
