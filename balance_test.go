package rope

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBalancePreservesText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	ropes, texts := sampleRopes()
	for k, r := range ropes {
		b := Balance(r)
		if b.String() != texts[k] {
			t.Errorf("sample %d: balance changed text to '%s'", k, b)
		}
		if !IsBalanced(b, DefaultLeafSize) {
			t.Errorf("sample %d: expected balanced rope, have\n%s", k, b.Sketch())
		}
		for frag := range b.RangeFragment() {
			if n := len([]rune(frag)); n > DefaultLeafSize {
				t.Errorf("sample %d: fragment '%s' has %d characters", k, frag, n)
			}
		}
	}
}

func TestBalanceAfterEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	r := New("")
	var err error
	for i := 0; i < 25; i++ {
		if r, err = Insert(r, r.Len()/2, "abcd"); err != nil {
			t.Fatal(err)
		}
	}
	if r.Len() != 100 {
		t.Fatalf("expected rope of length 100, have %d", r.Len())
	}
	if IsBalanced(r, DefaultLeafSize) {
		t.Errorf("expected edited rope to be unbalanced, height is %d", r.Height())
	}
	b := Balance(r)
	if b.String() != r.String() {
		t.Fatalf("balance changed text")
	}
	if b.Height() != 5 {
		t.Errorf("expected balanced height of 5, have %d", b.Height())
	}
	if !IsBalanced(b, DefaultLeafSize) {
		t.Errorf("expected rope to be balanced after Balance")
	}
	t.Logf("unbalanced height %d -> balanced height %d", r.Height(), b.Height())
}

func TestBalanceOddSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	b := BalanceWith(New("abcde"), 2)
	var frags []string
	for frag := range b.RangeFragment() {
		frags = append(frags, frag)
	}
	if strings.Join(frags, "|") != "ab|c|de" {
		t.Errorf("expected fragments ab|c|de, have %s", strings.Join(frags, "|"))
	}
	inner := b.root.(*innerNode)
	if inner.weight != 3 {
		t.Errorf("expected left half to receive the extra character, weight is %d", inner.weight)
	}
	if BalanceWith(New("abcdefghijkl"), 0).Height() != Balance(New("abcdefghijkl")).Height() {
		t.Errorf("expected leaf size 0 to select default leaf size")
	}
}

func TestNewIsBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	for n := 0; n < 70; n++ {
		s := strings.Repeat("☺", n)
		r := New(s)
		if r.String() != s {
			t.Fatalf("collect(new(s)) != s for n=%d", n)
		}
		if !IsBalanced(r, DefaultLeafSize) {
			t.Errorf("new rope of length %d is not balanced:\n%s", n, r.Sketch())
		}
	}
}
