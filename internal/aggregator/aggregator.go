package aggregator

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/denis-bt/sync-core-visualization/internal/matcher"
	"github.com/denis-bt/sync-core-visualization/internal/model"
)

// Aggregator offers every input line to a fixed, ordered set of matchers and
// collects their trace groups once input is exhausted.
type Aggregator struct {
	matchers  []matcher.Matcher
	lines     int
	unmatched int
	matched   map[string]int
}

// New creates an Aggregator over the given matchers. Lines are offered to them
// in the order given.
func New(matchers ...matcher.Matcher) *Aggregator {
	return &Aggregator{
		matchers: matchers,
		matched:  make(map[string]int),
	}
}

// Run feeds all lines and stops at the first error.
func (a *Aggregator) Run(lines []model.RawLine) error {
	for _, line := range lines {
		if err := a.Feed(line); err != nil {
			return err
		}
	}
	zlog.Debug().
		Int("lines", a.lines).
		Int("unmatched", a.unmatched).
		Interface("matched", a.matched).
		Msg("extraction finished")
	return nil
}

// Feed offers one line to every matcher. A matcher error is fatal to the run
// and is returned with the line's position attached.
func (a *Aggregator) Feed(line model.RawLine) error {
	a.lines++
	hit := false
	for _, m := range a.matchers {
		ok, err := m.Process(line.Text)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", line.Source, line.Number)
		}
		if ok {
			a.matched[m.Name()]++
			hit = true
		}
	}
	if !hit {
		a.unmatched++
	}
	return nil
}

// Groups returns every matcher's groups in matcher order, without the groups
// that hold no samples at all.
func (a *Aggregator) Groups() []model.TraceGroup {
	var all []model.TraceGroup
	for _, m := range a.matchers {
		all = append(all, m.Groups()...)
	}
	return model.NonEmpty(all)
}

// Stats returns a snapshot of the extraction counters.
func (a *Aggregator) Stats() model.Stats {
	counts := make(map[string]int, len(a.matched))
	for k, v := range a.matched {
		counts[k] = v
	}
	return model.Stats{
		Lines:     a.lines,
		Unmatched: a.unmatched,
		Matched:   counts,
	}
}
