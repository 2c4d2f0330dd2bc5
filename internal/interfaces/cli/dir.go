package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDirCommand creates the dir command.
func NewDirCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Print the resolved debug directory",
		Long: `Print the debug directory the current policy resolves to, creating it
if absent. Useful for scripting cleanup or inspecting where log files
land for this working directory and environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.Logger.Dir())
			return nil
		},
	}
}
