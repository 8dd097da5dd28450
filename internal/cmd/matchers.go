package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/denis-bt/sync-core-visualization/internal/matcher"
)

var (
	styleName   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	styleFields = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var matchersCmd = &cobra.Command{
	Use:   "matchers",
	Short: "List the built-in line matchers and the fields they extract",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, d := range matcher.Describe(matcher.Default()) {
			if _, err := fmt.Fprintf(w, "%s\n  %s\n", styleName.Render(d.Name), styleFields.Render(strings.Join(d.Fields, ", "))); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchersCmd)
}
