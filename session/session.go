// Package session drives the interactive flow for one tool command:
// prompt for services and flags from a manifest, validate the selection
// with the rules engine, and on success build, confirm, and execute the
// command, saving its output as a report.
//
// The flow honors the adapter contract of the validation engine: an
// invalid report is presented to the user and the session refuses to
// proceed to command construction; warnings are shown but never block.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/zero-day-ai/toolsmith/command"
	"github.com/zero-day-ai/toolsmith/manifest"
	"github.com/zero-day-ai/toolsmith/privilege"
	"github.com/zero-day-ai/toolsmith/rules"
	"github.com/zero-day-ai/toolsmith/runner"
)

// Sentinel errors for session outcomes.
var (
	// ErrNotInteractive indicates stdin is not a terminal; the prompt flow
	// would hang rather than ask questions.
	ErrNotInteractive = errors.New("interactive session requires a terminal")

	// ErrValidationFailed indicates the selection failed compatibility
	// validation and the command was not built.
	ErrValidationFailed = errors.New("validation failed")

	// ErrAborted indicates the user declined execution.
	ErrAborted = errors.New("execution cancelled by user")
)

// Session runs the interactive flow for one manifest.
type Session struct {
	Manifest *manifest.Manifest

	// Elevation overrides the platform privilege query; nil uses the
	// real one.
	Elevation privilege.Elevation

	// DryRun stops after printing the built command.
	DryRun bool

	// AutoConfirm skips the execution confirmation prompt.
	AutoConfirm bool

	// Timeout bounds command execution; zero means no limit.
	Timeout time.Duration

	// Reporter persists command output; nil disables report saving.
	Reporter *runner.Reporter
}

// New returns a session for m with the platform elevation query.
func New(m *manifest.Manifest) *Session {
	return &Session{Manifest: m}
}

// Run executes the full interactive flow. It returns ErrValidationFailed
// when the selection is rejected, ErrAborted when the user declines
// execution, and ErrNotInteractive when stdin is not a terminal.
func (s *Session) Run(ctx context.Context) error {
	if !stdinIsTerminal() {
		return ErrNotInteractive
	}

	services, flags, err := s.collect()
	if err != nil {
		return err
	}

	report, err := rules.ValidateAll(services, flags, s.Manifest.RuleSet(),
		rules.WithElevation(s.Elevation))
	if err != nil {
		return fmt.Errorf("validate selection: %w", err)
	}

	fmt.Print(RenderReport(report))
	if !report.Valid {
		return ErrValidationFailed
	}

	builder := &command.Builder{Binary: s.Manifest.BinaryName()}
	cmdline, err := builder.Build(report.Flags, s.Manifest.FlagOrder())
	if err != nil {
		return fmt.Errorf("build command: %w", err)
	}

	fmt.Printf("\nGenerated command:\n$ %s\n", commandStyle.Render(cmdline))
	if s.DryRun {
		return nil
	}

	if !s.AutoConfirm {
		confirmed, err := confirmExecution()
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	argv, err := builder.Argv(report.Flags, s.Manifest.FlagOrder())
	if err != nil {
		return err
	}

	result, err := runner.Run(ctx, runner.Config{
		Binary:  argv[0],
		Args:    argv[1:],
		Timeout: s.Timeout,
	})
	if err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	if len(result.Stdout) > 0 {
		fmt.Print(string(result.Stdout))
	}
	if result.ExitCode != 0 {
		fmt.Print(errorStyle.Render(fmt.Sprintf("command exited with code %d", result.ExitCode)) + "\n")
		if len(result.Stderr) > 0 {
			fmt.Print(string(result.Stderr))
		}
	}

	if s.Reporter != nil {
		path, err := s.Reporter.Save(s.Manifest.ToolName(), s.Manifest.CommandName(), result)
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		fmt.Printf("Output saved to: %s\n", path)
	}

	return nil
}

func confirmExecution() (bool, error) {
	confirmed := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Execute this command?").
			Value(&confirmed),
	)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return confirmed, nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
