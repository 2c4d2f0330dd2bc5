package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/scratchlog/scratchlog"
)

// TailFlags holds command-line flags for the tail command.
type TailFlags struct {
	RefreshRate time.Duration
	MaxLines    int
}

// NewTailCommand creates the tail command.
func NewTailCommand(container *CLIContainer) *cobra.Command {
	flags := &TailFlags{}

	cmd := &cobra.Command{
		Use:   "tail [file]",
		Short: "Live view of a debug log file",
		Long: `Watch a log file in the debug directory as the instrumented program
writes to it. The view refreshes on an interval and shows the newest
entries at the bottom, like 'tail -f' with entry-aware styling.

Examples:
  scratchlog tail                  # Follow debug.log
  scratchlog tail cache.log        # Follow a named log file
  scratchlog tail --refresh 250ms  # Faster refresh`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := scratchlog.DefaultFile
			if len(args) > 0 {
				filename = args[0]
			}

			return runTail(container, filename, flags)
		},
	}

	cmd.Flags().DurationVar(&flags.RefreshRate, "refresh", 500*time.Millisecond, "Refresh rate for live updates")
	cmd.Flags().IntVar(&flags.MaxLines, "max-lines", 0, "Maximum lines to keep in view (0 = fit window)")

	return cmd
}

// runTail starts the terminal view.
func runTail(container *CLIContainer, filename string, flags *TailFlags) error {
	model := newTailModel(container.Logger.Dir(), filename, flags)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tail failed: %w", err)
	}

	return nil
}
