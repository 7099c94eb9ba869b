/*
Package textfile provides API helpers to load UTF-8 text files as ropes.

Files are read by a background goroutine in fragments. Every fragment
becomes a leaf of the resulting rope, so loading does not materialize the
file's content as a single string.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}
