package model

// RawLine is a single input line before any matcher has looked at it.
type RawLine struct {
	Text   string `json:"text"`
	Source string `json:"source"` // file path, or "-" for stdin
	Number int    `json:"number"` // 1-based
}

// Trace is a named sequence of samples. The x value of a sample is its index.
type Trace struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// TraceGroup is a titled set of traces drawn together in one chart panel.
type TraceGroup struct {
	Name   string  `json:"name"`
	Traces []Trace `json:"traces"`
}

// Empty reports whether no trace in the group holds a sample.
func (g TraceGroup) Empty() bool {
	for _, t := range g.Traces {
		if len(t.Values) > 0 {
			return false
		}
	}
	return true
}

// Len returns the length of the longest trace in the group.
func (g TraceGroup) Len() int {
	n := 0
	for _, t := range g.Traces {
		if len(t.Values) > n {
			n = len(t.Values)
		}
	}
	return n
}

// NonEmpty returns the groups holding at least one sample, in order.
// Kept groups are not trimmed: their empty traces stay in place.
func NonEmpty(groups []TraceGroup) []TraceGroup {
	out := make([]TraceGroup, 0, len(groups))
	for _, g := range groups {
		if !g.Empty() {
			out = append(out, g)
		}
	}
	return out
}

// Stats counts what extraction saw.
type Stats struct {
	Lines     int            `json:"lines"`
	Unmatched int            `json:"unmatched"`
	Matched   map[string]int `json:"matched"` // keyed by matcher name
}
