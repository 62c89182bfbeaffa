// Package commands wires the toolsmith CLI: manifest discovery, the
// interactive run flow, and global logging/directory flags.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const cliExecutable = "toolsmith"

// NewCommand constructs the top-level toolsmith CLI command, wiring
// global flags and log verbosity.
func NewCommand() *cobra.Command {
	var (
		manifestDir    string
		reportsDir     string
		verbosityCount int
	)

	cmd := &cobra.Command{
		Use:           cliExecutable,
		Short:         "Toolsmith builds validated, shell-safe invocations of security tools from declarative manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// -v count: 0=>Warn, 1=>Info, 2+=>Debug
			level := slog.LevelWarn
			switch {
			case verbosityCount == 1:
				level = slog.LevelInfo
			case verbosityCount >= 2:
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&manifestDir, "manifests", "manifests", "directory containing tool manifests")
	cmd.PersistentFlags().StringVar(&reportsDir, "reports", "reports", "directory for command output reports")
	cmd.PersistentFlags().CountVarP(&verbosityCount, "verbose", "v", "increase log verbosity (-v, -vv)")

	cmd.AddCommand(newListCommand(&manifestDir))
	cmd.AddCommand(newRunCommand(&manifestDir, &reportsDir))

	return cmd
}
