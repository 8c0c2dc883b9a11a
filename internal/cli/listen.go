package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/kevgo/tertestrial/internal/commands"
	"github.com/kevgo/tertestrial/pkg/config"
	"github.com/kevgo/tertestrial/pkg/executor"
	"github.com/kevgo/tertestrial/pkg/interrupt"
	"github.com/kevgo/tertestrial/pkg/logging"
	"github.com/kevgo/tertestrial/pkg/output"
	"github.com/kevgo/tertestrial/pkg/pipe"
	"github.com/kevgo/tertestrial/pkg/runner"
	"github.com/kevgo/tertestrial/pkg/settings"
	"github.com/kevgo/tertestrial/pkg/signals"
)

// runListen waits for triggers on the pipe and runs the matching commands
// until the user interrupts or the pipe breaks. Errors before listening
// starts are returned, errors of single triggers are only reported.
func runListen(ctx context.Context, s *settings.Settings, out, errOut io.Writer, styled bool) error {
	logger := logging.GetLogger("cli.listen")
	done := logging.LogOperationStart(logger, "listen")
	defer done()

	cfg, err := config.Load(s.Config)
	if err != nil {
		return err
	}
	logger.Debug().Int("actions", len(cfg.Actions)).Msg("Configuration loaded")

	p := pipe.New(s.Pipe)
	created, err := p.EnsureFIFO()
	if err != nil {
		return err
	}
	if !created {
		logger.Info().Str("pipe", p.Path).Msg("Reusing existing pipe")
	}
	defer func() {
		if err := p.Delete(); err != nil {
			logger.Warn().Err(err).Str("pipe", p.Path).Msg("Failed to delete pipe")
		}
	}()

	ch := signals.NewChannel()
	defer ch.Close()

	stop := interrupt.Handle(ch)
	defer stop()
	pipe.Listen(p, ch)

	console := output.NewConsole(out, errOut, styled)
	console.Listening(p.Path)

	exec := executor.New(executor.Options{
		Shell:  s.Shell,
		DryRun: s.DryRun,
		Stdout: out,
		Stderr: errOut,
		Logger: logging.GetLogger("executor"),
	})

	if err := runner.New(cfg, exec, console).Run(ctx, ch); err != nil && ctx.Err() == nil {
		return err
	}
	_, _ = fmt.Fprintln(out, commands.MsgExiting)
	return nil
}
