package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/scratchlog/scratchlog"
)

// WriteFlags holds command-line flags for the write command.
type WriteFlags struct {
	File    string
	Header  string
	Context string
}

// NewWriteCommand creates the write command.
func NewWriteCommand(container *CLIContainer) *cobra.Command {
	flags := &WriteFlags{}

	cmd := &cobra.Command{
		Use:   "write <content>...",
		Short: "Append an entry to a debug log file",
		Long: `Append one entry to a log file in the debug directory. The first write
to a file in this invocation clears content left over from earlier
runs; within a single invocation later writes append.

Examples:
  scratchlog write "checkpoint reached"
  scratchlog write --file build.log --header STAGE "linking done"
  scratchlog write --context main.go:42 "state dump follows"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")
			return container.Logger.Write(flags.File, content, flags.Header, flags.Context)
		},
	}

	cmd.Flags().StringVar(&flags.File, "file", scratchlog.DefaultFile, "Log file name inside the debug directory")
	cmd.Flags().StringVar(&flags.Header, "header", "", "Header label for the entry")
	cmd.Flags().StringVar(&flags.Context, "context", "", "Context label, typically file:line")

	return cmd
}
