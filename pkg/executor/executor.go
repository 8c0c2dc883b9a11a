package executor

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/kevgo/tertestrial/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultShell runs the commands
const DefaultShell = "/bin/sh"

// Result describes one executed command
type Result struct {
	Command  string
	ExitCode int
	Duration time.Duration
	DryRun   bool
}

// Success reports whether the command exited with code 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Executor runs a resolved command
type Executor interface {
	Execute(ctx context.Context, command string) (Result, error)
}

// Options contains configuration for the executor
type Options struct {
	Shell  string
	Dir    string
	DryRun bool
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger
}

// Shell executes commands through a shell
type Shell struct {
	shell  string
	dir    string
	dryRun bool
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

// New creates a new shell executor
func New(opts Options) *Shell {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	shell := opts.Shell
	if shell == "" {
		shell = DefaultShell
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Shell{
		shell:  shell,
		dir:    opts.Dir,
		dryRun: opts.DryRun,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Execute runs the command and waits for it to finish. Output streams to
// the configured writers while the command runs.
func (s *Shell) Execute(ctx context.Context, command string) (Result, error) {
	result := Result{Command: command, DryRun: s.dryRun}

	s.logger.Info().
		Str("command", command).
		Str("shell", s.shell).
		Bool("dryRun", s.dryRun).
		Msg("Executing command")

	if s.dryRun {
		_, _ = fmt.Fprintf(s.stdout, "would run: %s\n", command)
		return result, nil
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, s.shell, "-c", command)
	cmd.Dir = s.dir
	cmd.Stdin = nil
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()
	result.Duration = time.Since(start)

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		s.logger.Debug().
			Int("exitCode", result.ExitCode).
			Dur("duration", result.Duration).
			Msg("Command failed")
		return result, nil
	}
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("command", command).
			Msg("Command execution failed")
		return result, errors.Wrapf(err, errors.ErrCommandExecute, "failed to execute command: %s", command).
			WithHint("Please check the \"run\" entry in your configuration file and the shell setting")
	}

	s.logger.Debug().
		Dur("duration", result.Duration).
		Msg("Command succeeded")
	return result, nil
}
