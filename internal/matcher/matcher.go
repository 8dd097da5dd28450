package matcher

import (
	"regexp"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

// Matcher recognizes one log line shape and accumulates the numbers it carries.
// Process returns false with a nil error when the line does not match; in that
// case, and when an error is returned, the matcher's state is unchanged.
type Matcher interface {
	Name() string
	Fields() []string
	Process(line string) (bool, error)
	Groups() []model.TraceGroup
}

// UnknownEntity collects samples from lines whose entity identifier is empty.
const UnknownEntity = "unknown"

// Default returns fresh instances of the built-in matchers, in processing order.
func Default() []Matcher {
	return []Matcher{
		NewEventLoopMatcher(),
		NewUTPAckMatcher(),
		NewPeerQueueMatcher(),
		NewPieceMatcher(),
	}
}

// Description is a printable summary of a matcher.
type Description struct {
	Name   string
	Fields []string
}

func Describe(matchers []Matcher) []Description {
	out := make([]Description, 0, len(matchers))
	for _, m := range matchers {
		out = append(out, Description{Name: m.Name(), Fields: m.Fields()})
	}
	return out
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// series maps an entity identifier to one growable sample slice per field.
// Entities keep the order in which they were first seen.
type series struct {
	fields []string
	keys   []string
	data   map[string][][]float64
}

func newSeries(fields []string) *series {
	return &series{
		fields: fields,
		data:   make(map[string][][]float64),
	}
}

// add appends one value per field to key's accumulator, creating it on first use.
func (s *series) add(key string, values []float64) {
	if key == "" {
		key = UnknownEntity
	}
	acc, ok := s.data[key]
	if !ok {
		acc = make([][]float64, len(s.fields))
		s.data[key] = acc
		s.keys = append(s.keys, key)
	}
	for i, v := range values {
		acc[i] = append(acc[i], v)
	}
}

// entities returns the known identifiers in first-seen order.
func (s *series) entities() []string {
	return s.keys
}

// traces copies the named fields of key's accumulator. Unknown keys yield
// empty traces.
func (s *series) traces(key string, fields ...string) []model.Trace {
	acc := s.data[key]
	out := make([]model.Trace, 0, len(fields))
	for _, name := range fields {
		tr := model.Trace{Name: name}
		if i := s.index(name); i >= 0 && acc != nil {
			tr.Values = append([]float64(nil), acc[i]...)
		}
		out = append(out, tr)
	}
	return out
}

func (s *series) index(field string) int {
	for i, f := range s.fields {
		if f == field {
			return i
		}
	}
	return -1
}

// firstMatch returns the submatches of the first pattern matching line.
func firstMatch(patterns []*regexp.Regexp, line string) []string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return m
		}
	}
	return nil
}

// parseValues converts every capture before anything is recorded, so a bad
// number never leaves a partially appended sample behind.
func parseValues(matcher string, fields []string, captures []string) ([]float64, error) {
	if len(captures) != len(fields) {
		return nil, errors.Newf("%s: expected %d values, got %d", matcher, len(fields), len(captures))
	}
	values := make([]float64, len(captures))
	for i, c := range captures {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: field %s", matcher, fields[i])
		}
		values[i] = v
	}
	return values, nil
}
