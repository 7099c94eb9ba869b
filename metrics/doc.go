/*
Package metrics provides some pre-manufactured metrics on texts.

Counting metrics (lines, words) are calculated fragment by fragment and
combined along the tree structure of a rope, without materializing the text.
Unicode-aware metrics (grapheme clusters, display width, line break
opportunities) need a contiguous view of the text and read a rope
sequentially.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}
