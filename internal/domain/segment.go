package domain

// Segment is a contiguous slice of a poem line. Only word segments are
// clickable.
type Segment struct {
	Text   string `json:"text"`
	IsWord bool   `json:"isWord"`
}

// LineGroup holds the segments of one input line in order. A blank line
// carries a single non-word segment with the original whitespace and
// Blank set, so renderers can emit a break.
type LineGroup struct {
	Segments []Segment `json:"segments"`
	Blank    bool      `json:"blank,omitempty"`
}

// Text reassembles the line from its segments.
func (g LineGroup) Text() string {
	switch len(g.Segments) {
	case 0:
		return ""
	case 1:
		return g.Segments[0].Text
	}
	n := 0
	for _, s := range g.Segments {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range g.Segments {
		b = append(b, s.Text...)
	}
	return string(b)
}

// WordCount returns the number of clickable segments in the line.
func (g LineGroup) WordCount() int {
	n := 0
	for _, s := range g.Segments {
		if s.IsWord {
			n++
		}
	}
	return n
}
