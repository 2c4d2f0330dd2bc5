package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/scratchlog/scratchlog"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds the dependencies for CLI commands.
type CLIContainer struct {
	Logger *scratchlog.Logger
}

// NewRootCommand builds the base command and wires all subcommands.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scratchlog",
		Short: "Scratchlog - per-run debug log files",
		Long: `Scratchlog manages per-run debug log files: plain-text files inside a
resolved debug directory that are cleared on the first write of each
process run and appended to afterwards.

The CLI locates the directory, writes ad-hoc entries, cleans old logs,
and tails a log file live while the instrumented program runs.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(NewDirCommand(container))
	rootCmd.AddCommand(NewWriteCommand(container))
	rootCmd.AddCommand(NewCleanCommand(container))
	rootCmd.AddCommand(NewTailCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary.
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and exits non-zero on error.
func Execute(container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
