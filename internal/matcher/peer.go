package matcher

import (
	"regexp"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

// Peer connection lines start with PC[<conn>][<sub>]. Only <conn> is used as
// the key; <sub> is captured and ignored.
const pcPrefix = `PC\[([x0-9a-z]+)\]\[([x0-9a-z]+)\] `

// ---------------------------------------------------------------------------
// Queue stats
// ---------------------------------------------------------------------------

// PeerQueueMatcher records pending/requests/unwritten counters per connection.
// Both the current "key=value" spelling and the older "key:value" spelling
// (with its "unwirtten" typo) are accepted.
type PeerQueueMatcher struct {
	patterns []*regexp.Regexp
	fields   []string
	series   *series
}

func NewPeerQueueMatcher() *PeerQueueMatcher {
	fields := []string{"pending", "requests", "unwritten"}
	return &PeerQueueMatcher{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(pcPrefix + `pending=([0-9]+) requests=([0-9]+) unwritten=([0-9]+)$`),
			regexp.MustCompile(pcPrefix + `pending:([0-9]+) requests:([0-9]+) unwirtten:([0-9]+)$`),
		},
		fields: fields,
		series: newSeries(fields),
	}
}

func (m *PeerQueueMatcher) Name() string     { return "PeerConnection" }
func (m *PeerQueueMatcher) Fields() []string { return m.fields }

func (m *PeerQueueMatcher) Process(line string) (bool, error) {
	matches := firstMatch(m.patterns, line)
	if matches == nil {
		return false, nil
	}
	values, err := parseValues(m.Name(), m.fields, matches[3:])
	if err != nil {
		return false, err
	}
	m.series.add(matches[1], values)
	return true, nil
}

func (m *PeerQueueMatcher) Groups() []model.TraceGroup {
	var out []model.TraceGroup
	for _, pc := range m.series.entities() {
		out = append(out, model.TraceGroup{
			Name:   m.Name() + " " + pc,
			Traces: m.series.traces(pc, m.fields...),
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Piece stats
// ---------------------------------------------------------------------------

// PieceMatcher records the round-trip time reported when a piece arrives.
type PieceMatcher struct {
	re     *regexp.Regexp
	fields []string
	series *series
}

func NewPieceMatcher() *PieceMatcher {
	fields := []string{"rtt"}
	return &PieceMatcher{
		re:     regexp.MustCompile(pcPrefix + `Got Piece:.*rtt:([0-9]+)$`),
		fields: fields,
		series: newSeries(fields),
	}
}

func (m *PieceMatcher) Name() string     { return "PeerConnection piece" }
func (m *PieceMatcher) Fields() []string { return m.fields }

func (m *PieceMatcher) Process(line string) (bool, error) {
	matches := m.re.FindStringSubmatch(line)
	if matches == nil {
		return false, nil
	}
	values, err := parseValues(m.Name(), m.fields, matches[3:])
	if err != nil {
		return false, err
	}
	m.series.add(matches[1], values)
	return true, nil
}

func (m *PieceMatcher) Groups() []model.TraceGroup {
	var out []model.TraceGroup
	for _, pc := range m.series.entities() {
		out = append(out, model.TraceGroup{
			Name:   "PeerConnection " + pc + " piece",
			Traces: m.series.traces(pc, m.fields...),
		})
	}
	return out
}
