package rope

// DefaultLeafSize is the maximum number of characters a leaf of a balanced
// rope will carry.
const DefaultLeafSize = 8

// Balance rebuilds a rope into a complete binary tree, with leafs carrying at
// most DefaultLeafSize characters each.
//
// Balancing flattens the rope to its full text and is therefore an O(n)
// operation. It is never called implicitly by editing operations.
func Balance(r Rope) Rope {
	return BalanceWith(r, DefaultLeafSize)
}

// BalanceWith rebuilds a rope into a complete binary tree, with leafs carrying
// at most leafSize characters each. A leafSize of 0 selects DefaultLeafSize.
//
// Texts longer than leafSize are split in the middle, with the left half
// receiving the extra character for texts of odd length.
func BalanceWith(r Rope, leafSize uint64) Rope {
	if leafSize == 0 {
		leafSize = DefaultLeafSize
	}
	text := []rune(r.String())
	if len(text) == 0 {
		return Rope{}
	}
	root := rebuild(text, leafSize)
	tracer().Debugf("balanced rope of length %d to height %d", len(text), root.Height())
	return Rope{root: root}
}

func rebuild(text []rune, leafSize uint64) node {
	n := uint64(len(text))
	if n <= leafSize {
		return &leafNode{text: string(text), length: n}
	}
	mid := (n + 1) / 2
	return makeInnerNode(rebuild(text[:mid], leafSize), rebuild(text[mid:], leafSize))
}

// IsBalanced reports whether every leaf of r carries at most leafSize
// characters and the height of r does not exceed the height of a balanced rope
// of the same length.
func IsBalanced(r Rope, leafSize uint64) bool {
	if leafSize == 0 {
		leafSize = DefaultLeafSize
	}
	ok := true
	_ = r.EachFragment(func(frag string, _ uint64) error {
		if uint64(len([]rune(frag))) > leafSize {
			ok = false
			return errStopIteration
		}
		return nil
	})
	return ok && r.Height() <= balancedHeight(r.Len(), leafSize)
}

// balancedHeight returns the height of a rope of length n after balancing.
func balancedHeight(n, leafSize uint64) int {
	if n == 0 {
		return 0
	}
	h := 1
	for n > leafSize {
		n = (n + 1) / 2
		h++
	}
	return h
}
