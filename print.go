package rope

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Sketch returns a printable outline of the internal tree structure of a
// rope (for debugging purposes). Inner nodes show their weight, leafs show
// their fragment.
func (r Rope) Sketch() string {
	header := fmt.Sprintf("Rope(len=%d, height=%d)\n", r.Len(), r.Height())
	p := tp.New()
	sketch(p, r.node())
	return header + p.String()
}

func sketch(p tp.Tree, n node) {
	switch nd := n.(type) {
	case *innerNode:
		branch := p.AddBranch(fmt.Sprintf("(%d)", nd.weight))
		sketch(branch, nd.left)
		sketch(branch, nd.right)
	case *leafNode:
		p.AddNode(fmt.Sprintf("%q", nd.text))
	default:
		p.AddNode("∅")
	}
}

func strstart(s string) string {
	if len(s) <= 8 {
		return s
	}
	runes := []rune(s)
	if len(runes) > 8 {
		return string(runes[:7]) + "…"
	}
	return s
}
