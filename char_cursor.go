package rope

import (
	"unicode/utf8"
)

// CharCursor navigates a rope character by character.
//
// The cursor is bound to one rope value. Moving within a fragment does not
// touch the tree; crossing into the next fragment locates it by weight.
type CharCursor struct {
	rope Rope
	pos  uint64
	rest string // unread part of the current fragment
}

// NewCharCursor creates a cursor at the start of r.
func (r Rope) NewCharCursor() *CharCursor {
	return &CharCursor{rope: r}
}

// Pos returns the current cursor position.
func (cc *CharCursor) Pos() uint64 {
	if cc == nil {
		return 0
	}
	return cc.pos
}

// Seek moves the cursor to position i. i may be equal to the length of the
// rope, placing the cursor at the end.
func (cc *CharCursor) Seek(i uint64) error {
	if cc == nil {
		return ErrIllegalArguments
	}
	if i > cc.rope.Len() {
		return ErrIndexOutOfBounds
	}
	cc.pos = i
	cc.rest = ""
	return nil
}

// Next returns the character at the current cursor position and advances by
// one character.
//
// If the cursor is at the end of the rope, ok is false.
func (cc *CharCursor) Next() (ch rune, ok bool) {
	if cc == nil {
		return utf8.RuneError, false
	}
	if cc.rest == "" {
		leaf, j, err := index(cc.rope.node(), cc.pos)
		if err != nil {
			return utf8.RuneError, false
		}
		b, _ := leaf.byteOffset(j)
		cc.rest = leaf.text[b:]
	}
	ch, size := utf8.DecodeRuneInString(cc.rest)
	cc.rest = cc.rest[size:]
	cc.pos++
	return ch, true
}
