package rope

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// dump traces the structure of a rope.
func dump(r Rope) {
	for _, line := range strings.Split(r.Sketch(), "\n") {
		if line != "" {
			tracer().Debugf("%s", line)
		}
	}
}

func TestSketch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	r := Concat(New("Hello, world!"), Rope{})
	s := r.Sketch()
	dump(r)
	if !strings.HasPrefix(s, "Rope(len=13, height=3)\n") {
		t.Errorf("unexpected sketch header: %q", s)
	}
	for _, part := range []string{"(13)", "(7)", `"Hello, "`, `"world!"`, "∅"} {
		if !strings.Contains(s, part) {
			t.Errorf("expected sketch to contain %s:\n%s", part, s)
		}
	}
}
