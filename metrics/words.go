package metrics

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/rope"
)

// Span is a range descriptor inside a rope.
//
// Pos is the start position, Len is the span length, both in characters.
type Span struct {
	Pos uint64
	Len uint64
}

// WordsValue is the result of a word-finding pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// wordMetric is a rope.Metric which finds whitespace-delimited words.
type wordMetric struct{}

// wordsFound is a rope.MetricValue. Spans are relative to the start of the
// measured text.
type wordsFound struct {
	spans     []Span
	length    uint64
	openLeft  bool // text starts within a word
	openRight bool // text ends within a word
}

func (wordMetric) Apply(frag string) rope.MetricValue {
	v := &wordsFound{spans: make([]Span, 0, 4)}
	inWord := false
	for _, r := range frag {
		if unicode.IsSpace(r) {
			inWord = false
		} else {
			if !inWord {
				v.spans = append(v.spans, Span{Pos: v.length})
			}
			v.spans[len(v.spans)-1].Len++
			inWord = true
		}
		v.length++
	}
	v.openLeft = len(v.spans) > 0 && v.spans[0].Pos == 0
	v.openRight = inWord
	return v
}

// Combine appends the words of the right sibling. A word running across the
// border between both texts is merged into a single span.
func (v *wordsFound) Combine(rightSibling rope.MetricValue, _ rope.Metric) rope.MetricValue {
	sibling := rightSibling.(*wordsFound)
	if sibling.length == 0 {
		return v
	}
	if v.length == 0 {
		return sibling
	}
	spans := sibling.spans
	if v.openRight && sibling.openLeft {
		tracer().Debugf("word crosses fragment border at %d", v.length)
		v.spans[len(v.spans)-1].Len += spans[0].Len
		spans = spans[1:]
	}
	for _, s := range spans {
		v.spans = append(v.spans, Span{Pos: s.Pos + v.length, Len: s.Len})
	}
	v.openRight = sibling.openRight
	v.length += sibling.length
	return v
}

// Words finds the whitespace-delimited words in the characters [i…j) of a
// text. Span positions are relative to the start of the text.
func Words(text rope.Rope, i, j uint64) (WordsValue, error) {
	v, err := rope.ApplyMetric(text, i, j, wordMetric{})
	if err != nil {
		return WordsValue{}, fmt.Errorf("metrics.Words could not be applied: %w", err)
	}
	found := v.(*wordsFound)
	value := WordsValue{Spans: make([]Span, len(found.spans))}
	for k, s := range found.spans {
		value.Spans[k] = Span{Pos: s.Pos + i, Len: s.Len}
	}
	return value, nil
}
