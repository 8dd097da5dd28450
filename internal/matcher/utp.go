package matcher

import (
	"fmt"
	"regexp"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

// utpPanels splits the ack fields into the charts drawn per socket.
var utpPanels = []struct {
	name   string
	fields []string
}{
	{"utp packets", []string{"processed_packets", "loss_packets", "inflight_packets"}},
	{"rtt", []string{"min_rtt", "avr_rtt"}},
	{"delay", []string{"packets_delay"}},
	{"sndbuf", []string{"actual_sndbuf", "max_sndbuf"}},
}

// UTPAckMatcher records uTP selective-ack statistics per socket.
//
// Example line:
//
//	utp2 0x7f3a10 selack - acked=1, last_pr=1257116127, loss=0.00%/0, rtt=231/11940us, pdelay=11us, buf=0/6468619 B, in_flight=0
//
// The socket is the first 0x-prefixed hex token ahead of "acked=". Lines
// without one are filed under UnknownEntity.
type UTPAckMatcher struct {
	re     *regexp.Regexp
	fields []string
	series *series
}

func NewUTPAckMatcher() *UTPAckMatcher {
	fields := []string{"processed_packets", "loss_packets", "min_rtt", "avr_rtt", "packets_delay", "actual_sndbuf", "max_sndbuf", "inflight_packets"}
	return &UTPAckMatcher{
		re:     regexp.MustCompile(`(?:\b(0x[0-9a-fA-F]+)\b.*?)?acked=([0-9]+),.*loss=[0-9.]+%/([0-9]+), rtt=([0-9]+)/([0-9]+)us, pdelay=([0-9]+)us, buf=([0-9]+)/([0-9]+) B, in_flight=([0-9]+)`),
		fields: fields,
		series: newSeries(fields),
	}
}

func (m *UTPAckMatcher) Name() string     { return "utp2" }
func (m *UTPAckMatcher) Fields() []string { return m.fields }

func (m *UTPAckMatcher) Process(line string) (bool, error) {
	matches := m.re.FindStringSubmatch(line)
	if matches == nil {
		return false, nil
	}
	values, err := parseValues(m.Name(), m.fields, matches[2:])
	if err != nil {
		return false, err
	}
	m.series.add(matches[1], values)
	return true, nil
}

// Groups returns four panels per socket, sockets in first-seen order.
func (m *UTPAckMatcher) Groups() []model.TraceGroup {
	var out []model.TraceGroup
	for _, sock := range m.series.entities() {
		for _, p := range utpPanels {
			out = append(out, model.TraceGroup{
				Name:   fmt.Sprintf("%s %s %s", m.Name(), sock, p.name),
				Traces: m.series.traces(sock, p.fields...),
			})
		}
	}
	return out
}
