package rope

import "io"

// Reader returns a reader for the UTF-8 bytes of a rope.
func (r Rope) Reader() io.Reader {
	rr := &ropeReader{}
	rr.push(r.node())
	return rr
}

// ropeReader walks the leafs of a rope from left to right, keeping the
// pending right siblings on a stack.
type ropeReader struct {
	stack []node
	frag  string // unread rest of the current fragment
}

func (rr *ropeReader) push(n node) {
	rr.stack = append(rr.stack, n)
}

// nextFragment descends to the leftmost pending leaf.
func (rr *ropeReader) nextFragment() bool {
	for len(rr.stack) > 0 {
		n := rr.stack[len(rr.stack)-1]
		rr.stack = rr.stack[:len(rr.stack)-1]
		switch nd := n.(type) {
		case *innerNode:
			rr.push(nd.right)
			rr.push(nd.left)
		case *leafNode:
			if nd.text != "" {
				rr.frag = nd.text
				return true
			}
		}
	}
	return false
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	for n < len(p) {
		if rr.frag == "" && !rr.nextFragment() {
			break
		}
		k := copy(p[n:], rr.frag)
		rr.frag = rr.frag[k:]
		n += k
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}
