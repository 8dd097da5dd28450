package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	styleLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleCount  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	styleMiss   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	stylePanel  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

// Summary prints what was extracted: line counts, matches per matcher and
// the sample count of every panel that will be drawn.
func Summary(w io.Writer, stats model.Stats, groups []model.TraceGroup) error {
	p := &printer{w: w}

	p.line(styleHeader.Render("extraction"))
	p.line(fmt.Sprintf("  %s %s", styleLabel.Render(fmt.Sprintf("%-22s", "lines")), styleCount.Render(fmt.Sprint(stats.Lines))))
	p.line(fmt.Sprintf("  %s %s", styleLabel.Render(fmt.Sprintf("%-22s", "unmatched")), styleMiss.Render(fmt.Sprint(stats.Unmatched))))

	names := make([]string, 0, len(stats.Matched))
	for name := range stats.Matched {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p.line(fmt.Sprintf("  %s %s", styleLabel.Render(fmt.Sprintf("%-22s", name)), styleCount.Render(fmt.Sprint(stats.Matched[name]))))
	}

	rows, cols := Grid(len(groups))
	p.line(styleHeader.Render(fmt.Sprintf("panels (%d, %dx%d)", len(groups), rows, cols)))
	for _, g := range groups {
		p.line(fmt.Sprintf("  %s %s", stylePanel.Render(g.Name), styleMiss.Render(fmt.Sprintf("%d samples", g.Len()))))
	}
	return p.err
}

// printer remembers the first write error so Summary can report it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
