package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func TestSetupLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup(&buf, "warn"); err != nil {
		t.Fatal(err)
	}
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	zlog.Info().Msg("hidden")
	zlog.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("expected warn message in output, got %q", out)
	}
}

func TestSetupEmptyLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup(&buf, ""); err != nil {
		t.Fatal(err)
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", zerolog.GlobalLevel())
	}
}

func TestSetupBadLevel(t *testing.T) {
	if err := Setup(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
