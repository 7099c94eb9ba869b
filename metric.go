package rope

// Metric is a type for calculations on the text of a rope. A metric is applied
// to every fragment of a range of text, and the per-fragment results are then
// combined pairwise from left to right, following the tree structure.
//
// Metrics never materialize a rope's text. Items of interest (words, lines, …)
// may span more than one fragment; the MetricValue is responsible for handling
// the borders between siblings.
type Metric interface {
	Apply(frag string) MetricValue
}

// MetricValue is the result of applying a metric to a fragment of text, or to
// a sequence of adjacent fragments.
type MetricValue interface {
	// Combine combines a value with the value of the text directly to its
	// right. Combine may re-use the receiver.
	Combine(rightSibling MetricValue, metric Metric) MetricValue
}

// ApplyMetric applies a metric to the characters [i…j) of a rope.
func ApplyMetric(r Rope, i, j uint64, metric Metric) (MetricValue, error) {
	if metric == nil || j < i {
		return nil, ErrIllegalArguments
	}
	if j > r.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if i == j {
		return metric.Apply(""), nil
	}
	v := applyMetric(r.node(), i, j, metric)
	if v == nil {
		return metric.Apply(""), nil
	}
	return v, nil
}

// applyMetric calculates the metric value of range [i…j) relative to the
// start of the subtree n. A nil return value signals that the subtree did not
// contribute any characters.
func applyMetric(n node, i, j uint64, metric Metric) MetricValue {
	switch nd := n.(type) {
	case *innerNode:
		var vl, vr MetricValue
		if i < nd.weight {
			vl = applyMetric(nd.left, i, min(j, nd.weight), metric)
		}
		if j > nd.weight {
			vr = applyMetric(nd.right, i-min(i, nd.weight), j-nd.weight, metric)
		}
		if vl != nil && vr != nil {
			return vl.Combine(vr, metric)
		} else if vl != nil {
			return vl
		}
		return vr
	case *leafNode:
		j = min(j, nd.length)
		if i >= j {
			return nil
		}
		from, _ := nd.byteOffset(i)
		to, _ := nd.byteOffset(j)
		return metric.Apply(nd.text[from:to])
	}
	return nil
}
