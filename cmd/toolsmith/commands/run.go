package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/toolsmith/manifest"
	"github.com/zero-day-ai/toolsmith/runner"
	"github.com/zero-day-ai/toolsmith/session"
)

func newRunCommand(manifestDir, reportsDir *string) *cobra.Command {
	var (
		dryRun  bool
		yes     bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run <tool> <command>",
		Short: "Interactively build and execute a tool command",
		Long: `Run loads the manifest for the given tool command, prompts for
services and flags, validates the selection for compatibility, and on
success builds and executes the command, saving its output as a report.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := manifest.NewLoader(*manifestDir)
			m, err := loader.Load(args[0], args[1])
			if err != nil {
				return err
			}

			if !dryRun && !runner.BinaryExists(m.BinaryName()) {
				return fmt.Errorf("binary %q not found in PATH", m.BinaryName())
			}

			s := session.New(m)
			s.DryRun = dryRun
			s.AutoConfirm = yes
			s.Timeout = timeout
			s.Reporter = &runner.Reporter{Dir: *reportsDir}

			err = s.Run(cmd.Context())
			if errors.Is(err, session.ErrAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Command execution cancelled.")
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the built command without executing it")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the execution confirmation prompt")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort execution after this duration (0 = no limit)")

	return cmd
}
