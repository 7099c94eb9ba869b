package rope

// Concat concatenates two ropes and returns a new rope. Both ropes become
// children of a new inner node, without being copied.
func Concat(left, right Rope) Rope {
	return Rope{root: makeInnerNode(left.node(), right.node())}
}

// ConcatAll concatenates ropes from left to right. Without arguments it
// returns the void rope.
func ConcatAll(ropes ...Rope) Rope {
	if len(ropes) == 0 {
		return Rope{}
	}
	r := ropes[0]
	for _, o := range ropes[1:] {
		r = Concat(r, o)
	}
	return r
}

// Split splits a rope into two new (smaller) ropes right before position i.
// Split(R,i) => split R into R1 and R2, with R1=c0,...,ci-1 and R2=ci,...,cn.
//
// If i is greater than the length of the rope, an out-of-bounds error is
// returned and r stays untouched.
func Split(r Rope, i uint64) (Rope, Rope, error) {
	if i > r.Len() {
		return Rope{}, Rope{}, ErrIndexOutOfBounds
	}
	left, right, err := split(r.node(), i)
	if err != nil {
		return Rope{}, Rope{}, err
	}
	return Rope{root: left}, Rope{root: right}, nil
}

// split follows the weights down to the leaf containing position i. On the
// way back up it re-assembles the sub-trees not containing i with the
// respective half of the split leaf.
func split(n node, i uint64) (node, node, error) {
	switch nd := n.(type) {
	case *innerNode:
		if i < nd.weight {
			ll, lr, err := split(nd.left, i)
			if err != nil {
				return nil, nil, err
			}
			return ll, makeInnerNode(lr, nd.right), nil
		}
		rl, rr, err := split(nd.right, i-nd.weight)
		if err != nil {
			return nil, nil, err
		}
		return makeInnerNode(nd.left, rl), rr, nil
	case *leafNode:
		if i > nd.length {
			return nil, nil, ErrIndexOutOfBounds
		}
		tracer().Debugf("split leaf '%s' at %d", strstart(nd.text), i)
		l, r := nd.split(i)
		return l, r, nil
	default:
		if i > 0 {
			return nil, nil, ErrIndexOutOfBounds
		}
		return emptyNode{}, emptyNode{}, nil
	}
}

// Insert inserts a text at position i of a rope, resulting in a new rope.
// The text will become a single new fragment.
// If i is greater than the length of r, an out-of-bounds error is returned.
func Insert(r Rope, i uint64, text string) (Rope, error) {
	left, right, err := Split(r, i)
	if err != nil {
		return Rope{}, err
	}
	frag := Rope{root: makeLeafNode(text)}
	return Concat(left, Concat(frag, right)), nil
}

// Delete removes the characters [i…j) from a rope, resulting in a new rope.
func Delete(r Rope, i, j uint64) (Rope, error) {
	if j < i {
		return Rope{}, ErrIllegalArguments
	}
	if j > r.Len() {
		return Rope{}, ErrIndexOutOfBounds
	}
	left, rest, err := Split(r, i)
	if err != nil {
		return Rope{}, err
	}
	_, right, err := Split(rest, j-i)
	if err != nil {
		return Rope{}, err
	}
	return Concat(left, right), nil
}

// Cut cuts out a substring [i…i+l) from a rope. It returns a new rope
// without the cut-out segment and the cut segment itself.
func Cut(r Rope, i, l uint64) (Rope, Rope, error) {
	if r.Len() < i || r.Len()-i < l {
		return Rope{}, Rope{}, ErrIndexOutOfBounds
	}
	left, rest, err := Split(r, i)
	if err != nil {
		return Rope{}, Rope{}, err
	}
	mid, right, err := Split(rest, l)
	if err != nil {
		return Rope{}, Rope{}, err
	}
	return Concat(left, right), mid, nil
}

// Substr creates a new rope from the characters [i…i+l) of r.
func Substr(r Rope, i, l uint64) (Rope, error) {
	if r.Len() < i || r.Len()-i < l {
		return Rope{}, ErrIndexOutOfBounds
	}
	if l == 0 {
		return Rope{}, nil
	}
	_, rest, err := Split(r, i)
	if err != nil {
		return Rope{}, err
	}
	sub, _, err := Split(rest, l)
	return sub, err
}

// Report outputs a substring: Report(i,l) => outputs the string ci,...,ci+l-1.
func (r Rope) Report(i, l uint64) (string, error) {
	sub, err := Substr(r, i, l)
	if err != nil {
		return "", err
	}
	return sub.String(), nil
}
