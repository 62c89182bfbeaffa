// Package runner executes built tool invocations and persists their
// output as report files. It wraps os/exec with a context-aware API:
// commands are killed on timeout or cancellation, and a non-zero exit is
// reported in the Result rather than as an error so callers decide how to
// treat tool failures.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// Config holds the configuration for one command execution.
type Config struct {
	// Binary is the name or path of the command to execute (required).
	Binary string

	// Args are the command-line arguments.
	Args []string

	// WorkDir is the working directory for the command.
	WorkDir string

	// Env specifies environment variables in "KEY=value" form. If nil the
	// command inherits the parent environment.
	Env []string

	// Timeout bounds execution. Zero means no timeout beyond ctx.
	Timeout time.Duration

	// Stdin is data to feed the command's standard input.
	Stdin []byte
}

// Result holds the outcome of a completed execution.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Run executes the configured command, capturing stdout and stderr.
// Only execution failures (binary not found, permission denied, timeout)
// return an error; a command that ran and exited non-zero returns a
// Result with the exit code populated and a nil error.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Binary == "" {
		return nil, errors.New("binary is required")
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, cfg.Binary, cfg.Args...)
	if cfg.WorkDir != "" {
		cmd.Dir = cfg.WorkDir
	}
	if cfg.Env != nil {
		cmd.Env = cfg.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(cfg.Stdin) > 0 {
		cmd.Stdin = bytes.NewReader(cfg.Stdin)
	}

	slog.Debug("running command", "binary", cfg.Binary, "args", cfg.Args)

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: 0,
		Duration: duration,
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result, fmt.Errorf("command timed out after %v", cfg.Timeout)
		}
		if ctx.Err() == context.Canceled {
			return result, errors.New("command cancelled")
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			slog.Debug("command exited non-zero", "binary", cfg.Binary, "exit_code", result.ExitCode)
			return result, nil
		}

		return result, fmt.Errorf("command execution failed: %w", err)
	}

	return result, nil
}

// BinaryExists reports whether a binary can be found in PATH.
func BinaryExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
