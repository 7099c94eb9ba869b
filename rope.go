package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// Rope is a type for an immutable text.
//
// A rope internally consists of fragments of text, which are never modified.
// Fragments and whole subtrees may be shared between ropes, or versions of a
// rope, as every modifying operation creates new nodes along the path of
// change only.
//
// A rope created by
//
//	Rope{}
//
// is a valid object and behaves like the empty string.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go strings.
//
//	Operation     |   Rope          |  String
//	--------------+-----------------+--------
//	Index         |   O(depth)      |   O(1)
//	Split         |   O(depth)      |   O(1)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(1)          |   O(n)
//	Insert        |   O(depth)      |   O(n)
//	Delete        |   O(depth)      |   O(n)
//	Balance       |   O(n)          |   –
//
// Depth is logarithmic for balanced ropes, but editing operations let it grow.
// Clients doing many edits should call Balance from time to time.
type Rope struct {
	root node
}

// New creates a rope from a Go string. The new rope is balanced, i.e. it
// consists of fragments of at most DefaultLeafSize characters.
func New(text string) Rope {
	if text == "" {
		return Rope{}
	}
	return Balance(Rope{root: makeLeafNode(text)})
}

// String returns the complete rope as a Go string. This may be an expensive
// operation, as it will allocate a buffer for all the bytes of the rope and
// collect all fragments to a single continuous string.
func (r Rope) String() string {
	var bf strings.Builder
	_ = r.EachFragment(func(frag string, _ uint64) error {
		bf.WriteString(frag)
		return nil
	})
	return bf.String()
}

// Collect flattens a rope to the text it represents.
func Collect(r Rope) string {
	return r.String()
}

// IsVoid returns true if r represents "".
func (r Rope) IsVoid() bool {
	return r.Len() == 0
}

// Len returns the length of a rope in characters.
func (r Rope) Len() uint64 {
	return r.node().Len()
}

// Height returns the height of the rope's tree. The empty rope has height 0,
// a single fragment has height 1.
func (r Rope) Height() int {
	return r.node().Height()
}

// CharAt returns the character at position i.
// If i is not a valid position of r, ErrIndexOutOfBounds is returned.
func (r Rope) CharAt(i uint64) (rune, error) {
	leaf, j, err := index(r.node(), i)
	if err != nil {
		return utf8.RuneError, err
	}
	_, ch := leaf.byteOffset(j)
	return ch, nil
}

// RuneAt is a variant of CharAt for positions of type int. Negative positions
// are out of bounds.
func (r Rope) RuneAt(i int) (rune, error) {
	if i < 0 {
		return utf8.RuneError, ErrIndexOutOfBounds
	}
	return r.CharAt(uint64(i))
}

// FragmentCount returns the number of fragments this rope is internally split into.
func (r Rope) FragmentCount() int {
	cnt := 0
	_ = r.EachFragment(func(string, uint64) error {
		cnt++
		return nil
	})
	return cnt
}

// EachFragment visits all fragments of a rope in logical order.
// Empty leafs, as left behind by splitting at a fragment border, are not
// fragments and are skipped.
//
// The callback receives each fragment and its starting position. Iteration
// stops at the first callback error and returns that error to the caller.
func (r Rope) EachFragment(f func(frag string, pos uint64) error) error {
	return traverse(r.node(), 0, 0, func(n node, pos uint64, _ int) error {
		if leaf, ok := n.(*leafNode); ok && leaf.length > 0 {
			return f(leaf.text, pos)
		}
		return nil
	})
}

// RangeFragment returns an iterator over all fragments in logical order.
func (r Rope) RangeFragment() iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = r.EachFragment(func(frag string, _ uint64) error {
			if !yield(frag) {
				return errStopIteration
			}
			return nil
		})
	}
}

const errStopIteration = RopeError("iteration stopped")

func (r Rope) node() node {
	if r.root == nil {
		return emptyNode{}
	}
	return r.root
}

// --- Node types ------------------------------------------------------------

// We use 3 types of distinct nodes: the empty node, leaf nodes and inner nodes.
// Inner nodes always have two children, one of which may be an empty node.
// Leaf nodes carry a fragment of text together with its length in characters.
//
// Nodes do not include a reference to their parent node. This is necessary to
// be able to re-use subtrees and having a persistent (immutable) data
// structure without having to always clone the complete tree. Tree operations
// create new nodes on the path of modification and reference all unchanged
// parts of the tree.
//
// Some invariants hold:
//
//   - The weight of an inner node is equal to the length of its *left* subtree
//     at construction time.
//   - The length of an inner node is its weight plus the length of its right
//     subtree.
//   - The height of an inner node is the maximum of its children's heights + 1.
//   - No node is modified after construction.
type node interface {
	Len() uint64
	Height() int
	fmt.Stringer
	isNode()
}

type emptyNode struct{}

type leafNode struct {
	text   string
	length uint64 // in runes
}

type innerNode struct {
	left, right node
	weight      uint64
	height      int
}

func (emptyNode) Len() uint64    { return 0 }
func (emptyNode) Height() int    { return 0 }
func (emptyNode) String() string { return "<empty>" }
func (emptyNode) isNode()        {}

func makeLeafNode(text string) *leafNode {
	return &leafNode{
		text:   text,
		length: uint64(utf8.RuneCountInString(text)),
	}
}

func (leaf *leafNode) Len() uint64 {
	return leaf.length
}

func (leaf *leafNode) Height() int {
	return 1
}

func (leaf *leafNode) String() string {
	return leaf.text
}

func (leaf *leafNode) isNode() {}

// byteOffset returns the byte position of character i within the fragment,
// together with the character found there. For i == length it returns the
// length of the fragment in bytes.
func (leaf *leafNode) byteOffset(i uint64) (int, rune) {
	var k uint64
	for b, ch := range leaf.text {
		if k == i {
			return b, ch
		}
		k++
	}
	return len(leaf.text), utf8.RuneError
}

// split splits a leaf node at character position i, resulting in 2 new leaf nodes.
func (leaf *leafNode) split(i uint64) (*leafNode, *leafNode) {
	assert(i <= leaf.length, "leaf split position out of range")
	b, _ := leaf.byteOffset(i)
	return &leafNode{text: leaf.text[:b], length: i},
		&leafNode{text: leaf.text[b:], length: leaf.length - i}
}

func makeInnerNode(left, right node) *innerNode {
	return &innerNode{
		left:   left,
		right:  right,
		weight: left.Len(),
		height: max(left.Height(), right.Height()) + 1,
	}
}

func (inner *innerNode) Len() uint64 {
	return inner.weight + inner.right.Len()
}

func (inner *innerNode) Height() int {
	return inner.height
}

func (inner *innerNode) String() string {
	return fmt.Sprintf("<inner %d|%d>", inner.weight, inner.height)
}

func (inner *innerNode) isNode() {}

// --- Tree walking ----------------------------------------------------------

// index locates the leaf containing position i. If successful, it will return
// a reference to a leaf node and the position within the node.
func index(n node, i uint64) (*leafNode, uint64, error) {
	for {
		switch nd := n.(type) {
		case *innerNode:
			if i < nd.weight {
				n = nd.left
			} else {
				i -= nd.weight
				n = nd.right
			}
		case *leafNode:
			if i >= nd.length {
				return nil, 0, ErrIndexOutOfBounds
			}
			return nd, i, nil
		default:
			return nil, 0, ErrIndexOutOfBounds
		}
	}
}

// traverse walks a (sub-)tree in order, calling f for every node. pos is the
// text position of the leftmost character of the subtree. Inner nodes are
// reported before their children.
func traverse(n node, pos uint64, depth int, f func(node, uint64, int) error) error {
	if err := f(n, pos, depth); err != nil {
		return err
	}
	if inner, ok := n.(*innerNode); ok {
		if err := traverse(inner.left, pos, depth+1, f); err != nil {
			return err
		}
		return traverse(inner.right, pos+inner.weight, depth+1, f)
	}
	return nil
}
