package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/filmlens/internal/tui"
)

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Explore the dataset in an interactive terminal UI",
		Long: `Open a full-screen terminal dashboard.

Keys:
  tab        cycle between filter panel and charts
  up/down    move through genres or scroll charts
  [ ] { }    narrow or widen the year range
  r          reset filters
  q          quit`,
		RunE: runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	model := tui.NewModel(cmdCtx.Session, tui.Options{
		HistogramBins: cmdCtx.Cfg.HistogramBins,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
