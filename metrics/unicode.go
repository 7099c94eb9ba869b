package metrics

import (
	"bufio"
	"sync"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

func setup() {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
}

// Graphemes counts the user-perceived characters (grapheme clusters) of a
// text. This is different from text.Len(), which counts code points.
func Graphemes(text rope.Rope) int {
	if text.IsVoid() {
		return 0
	}
	setup()
	return grapheme.StringFromString(text.String()).Len()
}

// Width returns the display width of a text in units of ‘en’, i.e. in
// multiples of the width of a Latin character. If context is nil,
// uax11.LatinContext is used.
func Width(text rope.Rope, context *uax11.Context) int {
	if text.IsVoid() {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setup()
	gstr := grapheme.StringFromString(text.String())
	return uax11.StringWidth(gstr, context)
}

// Segments splits a text at line break opportunities (UAX#14). Concatenating
// the segments reproduces the text.
func Segments(text rope.Rope) []string {
	if text.IsVoid() {
		return nil
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(text.Reader()))
	segments := make([]string, 0, 16)
	for segmenter.Next() {
		p1, _ := segmenter.Penalties()
		frag := string(segmenter.Bytes())
		tracer().Debugf("segment (p=%d): '%s'", p1, frag)
		segments = append(segments, frag)
	}
	return segments
}
