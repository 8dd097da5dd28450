package matcher

import (
	"regexp"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

const globalEntity = "*"

// EventLoopMatcher records the UDP events thread timing line. It is not keyed:
// all samples land in a single global trace set. Durations are microseconds.
type EventLoopMatcher struct {
	re     *regexp.Regexp
	fields []string
	series *series
}

func NewEventLoopMatcher() *EventLoopMatcher {
	fields := []string{"loop_time", "wait_time", "process_queue_time", "process_packets_time", "check_timeout_time"}
	return &EventLoopMatcher{
		re:     regexp.MustCompile(`loop_time=([0-9]+)us, wait_time=([0-9]+)us, process_queue_time=([0-9]+)us, process_packets_time=([0-9]+)us, check_timeout_time=([0-9]+)us`),
		fields: fields,
		series: newSeries(fields),
	}
}

func (m *EventLoopMatcher) Name() string     { return "udp" }
func (m *EventLoopMatcher) Fields() []string { return m.fields }

func (m *EventLoopMatcher) Process(line string) (bool, error) {
	matches := m.re.FindStringSubmatch(line)
	if matches == nil {
		return false, nil
	}
	values, err := parseValues(m.Name(), m.fields, matches[1:])
	if err != nil {
		return false, err
	}
	m.series.add(globalEntity, values)
	return true, nil
}

// Groups always returns the single timing group, even before any match.
func (m *EventLoopMatcher) Groups() []model.TraceGroup {
	return []model.TraceGroup{{
		Name:   "udp EventsThread timing",
		Traces: m.series.traces(globalEntity, m.fields...),
	}}
}
