package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewCleanCommand creates the clean command.
func NewCleanCommand(container *CLIContainer) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove log files from the debug directory",
		Long: `Remove the regular files in the resolved debug directory. Log files
grow without bound across runs; clean is the external cleanup the
library itself never performs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := container.Logger.Dir()

			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("failed to read debug directory %s: %w", dir, err)
			}

			removed := 0
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				path := filepath.Join(dir, e.Name())
				if dryRun {
					fmt.Fprintf(cmd.OutOrStdout(), "would remove %s\n", path)
					removed++
					continue
				}
				if err := os.Remove(path); err != nil {
					return fmt.Errorf("failed to remove %s: %w", path, err)
				}
				removed++
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) would be removed from %s\n", removed, dir)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d file(s) from %s\n", removed, dir)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List files without removing them")

	return cmd
}
