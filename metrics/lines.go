package metrics

import (
	"fmt"
	"strings"

	"github.com/npillmayer/rope"
)

// lineMetric is a rope.Metric that counts newline characters.
type lineMetric struct{}

// linesCounted is a rope.MetricValue.
type linesCounted struct {
	newlines    int
	empty       bool
	lastNewline bool // does the measured text end with a newline?
}

// Apply counts the newlines in a text fragment.
// Apply is part of interface rope.Metric.
func (lineMetric) Apply(frag string) rope.MetricValue {
	return &linesCounted{
		newlines:    strings.Count(frag, "\n"),
		empty:       frag == "",
		lastNewline: strings.HasSuffix(frag, "\n"),
	}
}

func (lc *linesCounted) Combine(rightSibling rope.MetricValue, _ rope.Metric) rope.MetricValue {
	sibling := rightSibling.(*linesCounted)
	if sibling.empty {
		return lc
	}
	lc.newlines += sibling.newlines
	lc.lastNewline = sibling.lastNewline
	lc.empty = false
	return lc
}

// Count returns the number of lines. A trailing line without a newline
// counts as a line.
func (lc *linesCounted) Count() int {
	if lc.empty {
		return 0
	}
	if lc.lastNewline {
		return lc.newlines
	}
	return lc.newlines + 1
}

// Lines counts the lines of a text, delimited by newline characters. Multiple
// consecutive newlines will be counted as multiple empty lines.
func Lines(text rope.Rope) (int, error) {
	v, err := rope.ApplyMetric(text, 0, text.Len(), lineMetric{})
	if err != nil {
		return -1, fmt.Errorf("metrics.Lines could not be applied: %w", err)
	}
	return v.(*linesCounted).Count(), nil
}
