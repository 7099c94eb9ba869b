package rope

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	b := NewBuilder()
	if err := b.AppendString("World"); err != nil {
		t.Fatal(err)
	}
	_ = b.PrependString("Hello ")
	_ = b.AppendString("")
	_ = b.AppendString("!")
	r := b.Rope()
	if r.String() != "Hello World!" {
		t.Errorf("expected 'Hello World!', have '%s'", r)
	}
	if r.FragmentCount() != 3 {
		t.Errorf("expected 3 fragments, have %d", r.FragmentCount())
	}
	if r.Height() != 3 {
		t.Errorf("expected height 3, have %d\n%s", r.Height(), r.Sketch())
	}
	if err := b.AppendString("x"); !errors.Is(err, ErrRopeCompleted) {
		t.Errorf("expected ErrRopeCompleted, got %v", err)
	}
	if b.Rope().String() != "Hello World!" {
		t.Errorf("expected second call of Rope() to return same rope")
	}
	b.Reset()
	if err := b.AppendString("x"); err != nil {
		t.Errorf("expected builder to accept fragments after reset, got %v", err)
	}
	if b.Rope().String() != "x" {
		t.Errorf("expected 'x' after reset")
	}
}

func TestVoidBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	var b *Builder
	if err := b.AppendString("x"); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected nil builder to reject fragments, got %v", err)
	}
	if !b.Rope().IsVoid() {
		t.Errorf("expected nil builder to produce void rope")
	}
	b.Reset() // must not panic
	if !NewBuilder().Rope().IsVoid() {
		t.Errorf("expected empty builder to produce void rope")
	}
}
