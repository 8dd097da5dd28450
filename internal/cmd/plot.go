package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/denis-bt/sync-core-visualization/internal/aggregator"
	"github.com/denis-bt/sync-core-visualization/internal/input"
	"github.com/denis-bt/sync-core-visualization/internal/matcher"
	"github.com/denis-bt/sync-core-visualization/internal/output"
)

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	// --- Read everything up front ---
	lines, err := input.Load(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	// --- Extract ---
	agg := aggregator.New(matcher.Default()...)
	if err := agg.Run(lines); err != nil {
		return errors.Wrap(err, "extract")
	}
	groups := agg.Groups()

	if s.Summary {
		if err := output.Summary(cmd.ErrOrStderr(), agg.Stats(), groups); err != nil {
			zlog.Warn().Err(err).Msg("summary not written")
		}
	}

	// --- Render ---
	f, err := os.Create(s.Output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := s.renderer().Render(f, groups); err != nil {
		f.Close()
		return errors.Wrapf(err, "render %s", s.Output)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", s.Output)
	}

	zlog.Info().Str("file", s.Output).Int("panels", len(groups)).Msg("written")
	return nil
}
