package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

const sampleLog = `12:00:00 udp loop_time=10us, wait_time=20us, process_queue_time=5us, process_packets_time=3us, check_timeout_time=1us
12:00:00 tracker announce ok
12:00:01 utp2 0x7f3a10 selack - acked=12, last_pr=1257116127, loss=0.00%/1, rtt=231/11940us, pdelay=11us, buf=0/6468619 B, in_flight=3
12:00:01 PC[0x1f][0x2a] pending=1 requests=2 unwritten=3
12:00:02 PC[0x1f][0x2a] pending:4 requests:5 unwirtten:6
12:00:02 PC[0x1f][0x2a] Got Piece: index=4 rtt:87
`

// execute runs the root command with the given stdin and arguments.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stderr)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stderr.String(), err
}

func TestPlotWritesHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.html")

	if _, err := execute(t, sampleLog, "-o", out, "-f", "html", "--summary=false"); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	page := string(raw)
	if !strings.Contains(page, "<html") {
		t.Fatal("expected an HTML page")
	}
	for _, want := range []string{"udp EventsThread timing", "utp2 0x7f3a10 rtt", "PeerConnection 0x1f"} {
		if !strings.Contains(page, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestPlotOverwritesOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.html")
	if err := os.WriteFile(out, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "", "-o", out, "-f", "html", "--summary=false"); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "stale") || !strings.Contains(string(raw), "<html") {
		t.Errorf("expected stale file to be replaced with an empty page, got %q", raw)
	}
}

func TestPlotJSONFromFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "sync.log")
	if err := os.WriteFile(logPath, []byte(sampleLog), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.json")

	stderr, err := execute(t, "", "-o", out, "-f", "json", "--summary=true", filepath.Join(dir, "*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "unmatched") {
		t.Errorf("expected summary on stderr, got %q", stderr)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var groups []model.TraceGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	// 1 timing + 4 utp panels + queue + piece
	if len(groups) != 7 {
		t.Fatalf("expected 7 groups, got %d", len(groups))
	}
	queue := groups[5]
	if queue.Name != "PeerConnection 0x1f" {
		t.Fatalf("expected queue group, got %q", queue.Name)
	}
	if v := queue.Traces[2].Values; len(v) != 2 || v[0] != 3 || v[1] != 6 {
		t.Errorf("expected unwritten [3 6], got %v", v)
	}
}

func TestPlotFailsOnBadNumber(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.html")
	line := "PC[0x1][0x2] Got Piece: rtt:" + strings.Repeat("9", 400) + "\n"

	_, err := execute(t, line, "-o", out, "-f", "html", "--summary=false")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("expected no output file after a failed run")
	}
}

func TestPlotUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.svg")
	if _, err := execute(t, "", "-o", out, "-f", "svg"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestMatchersCommand(t *testing.T) {
	out, err := execute(t, "", "matchers")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"udp", "utp2", "PeerConnection piece", "inflight_packets"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected listing to contain %q, got:\n%s", want, out)
		}
	}
}
