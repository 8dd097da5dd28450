package matcher

import "testing"

// BenchmarkEventLoopMatcher measures timing line throughput.
func BenchmarkEventLoopMatcher(b *testing.B) {
	m := NewEventLoopMatcher()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Process(loopLine)
	}
}

// BenchmarkUTPAckMatcher measures ack line throughput.
func BenchmarkUTPAckMatcher(b *testing.B) {
	m := NewUTPAckMatcher()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Process(ackLine)
	}
}

// BenchmarkDefaultNoMatch measures the cost of a line no matcher wants,
// which is the common case in a real log.
func BenchmarkDefaultNoMatch(b *testing.B) {
	matchers := Default()
	line := "2026-02-17T12:00:00Z INFO tracker announce ok peers=42"

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, m := range matchers {
			m.Process(line)
		}
	}
}
