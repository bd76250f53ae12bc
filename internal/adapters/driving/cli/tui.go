package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [id]",
	Short: "Browse a run in the interactive terminal UI",
	Long: `Opens an archived run (default latest) in a terminal dashboard with an
overview tab and a contacts table.

Controls:
  tab      - Switch tab
  ↑/k, ↓/j - Navigate contacts
  s        - Cycle strength filter
  d        - Toggle dormant only
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = errors.New("TUI crashed")
		}
	}()

	if reportService == nil {
		return errors.New("report service not configured")
	}

	app, err := tui.NewApp(&tui.Ports{Reports: reportService}, optionalArg(args))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
