package rope

// Builder incrementally stages text fragments and finalizes them into a Rope.
//
// Fragments are kept as they are, i.e. the resulting rope will have exactly
// one leaf per non-empty staged fragment. Leafs are combined pairwise into a
// tree of minimal height, without flattening the text.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front []string
	// back keeps appended fragments in logical order.
	back []string

	done  bool
	dirty bool
	rope  Rope
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Rope returns the rope built from all staged fragments.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times.
func (b *Builder) Rope() Rope {
	if b == nil {
		return Rope{}
	}
	if b.dirty {
		b.rope = b.build()
		b.dirty = false
	}
	b.done = true
	if b.rope.IsVoid() {
		tracer().Debugf("rope builder: rope is void")
	}
	return b.rope
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	if b == nil {
		return
	}
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.rope = Rope{}
}

// AppendString appends a text fragment to the staged build.
func (b *Builder) AppendString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if text == "" {
		return nil
	}
	b.back = append(b.back, text)
	b.dirty = true
	return nil
}

// PrependString prepends a text fragment to the staged build.
func (b *Builder) PrependString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if text == "" {
		return nil
	}
	b.front = append(b.front, text)
	b.dirty = true
	return nil
}

func (b *Builder) build() Rope {
	frags := b.orderedFragments()
	if len(frags) == 0 {
		return Rope{}
	}
	return Rope{root: combine(frags)}
}

// combine creates a tree of minimal height over a list of fragments.
func combine(frags []string) node {
	if len(frags) == 1 {
		return makeLeafNode(frags[0])
	}
	mid := (len(frags) + 1) / 2
	return makeInnerNode(combine(frags[:mid]), combine(frags[mid:]))
}

func (b *Builder) orderedFragments() []string {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]string, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
