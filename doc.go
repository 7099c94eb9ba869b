/*
Package rope implements an immutable text type organized as a binary tree of
string fragments.

Ropes

A rope represents a (possibly long) sequence of characters as a tree. Leafs
carry fragments of text, inner nodes carry the character count of their left
subtree, the ‘weight’. Positions are routed through the tree by comparing them
to the weights along the path, without ever looking into leaf fragments.

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long string.

All operations on ropes are expressed as combinations of two primitives: Split
cuts a rope into two ropes at a position, Concat joins two ropes with constant
bookkeeping. Insert and Delete are built from these. Every operation returns new
ropes and leaves its operands untouched; unchanged subtrees are shared between
the old and the new rope value. Rope values may therefore be handed to other
goroutines for reading without any synchronization.

Editing operations tend to produce deep and skewed trees with many tiny
fragments. Balance rebuilds a rope from its flattened text into a complete
binary tree with leafs of at most DefaultLeafSize characters. Balancing is never
done implicitly, except for ropes created by New.

Characters are Unicode code points (runes). All positions and lengths are
counted in runes.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package rope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// RopeError is an error type for the rope module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrRopeCompleted signals that a rope builder has already completed a rope and
// it's illegal to further add fragments.
const ErrRopeCompleted = RopeError("forbidden to add fragments; rope has been completed")

// ErrIndexOutOfBounds is flagged whenever a rope position is
// outside the valid range of positions of a rope.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
