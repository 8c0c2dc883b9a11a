// Package runner is the dispatch loop of tertestrial. It receives signals,
// turns pipe lines into triggers, resolves them into commands and runs them.
package runner

import (
	"context"

	"github.com/kevgo/tertestrial/pkg/executor"
	"github.com/kevgo/tertestrial/pkg/logging"
	"github.com/kevgo/tertestrial/pkg/signals"
	"github.com/kevgo/tertestrial/pkg/trigger"
	"github.com/rs/zerolog"
)

// Resolver determines the command for a trigger
type Resolver interface {
	Resolve(query trigger.Trigger) (string, error)
}

// Reporter informs the user about what the runner does
type Reporter interface {
	CommandStarted(query trigger.Trigger, command string)
	CommandFinished(result executor.Result)
	TriggerFailed(line string, err error)
}

// Runner consumes signals until it receives Exit
type Runner struct {
	resolver Resolver
	executor executor.Executor
	reporter Reporter
	logger   zerolog.Logger
}

// New creates a runner
func New(resolver Resolver, exec executor.Executor, reporter Reporter) *Runner {
	return &Runner{
		resolver: resolver,
		executor: exec,
		reporter: reporter,
		logger:   logging.GetLogger("runner"),
	}
}

// Run processes signals in arrival order. It returns nil after the first
// Exit signal. Errors for a single trigger are reported and do not stop the
// loop.
func (r *Runner) Run(ctx context.Context, source signals.Receiver) error {
	for {
		signal, err := source.Receive(ctx)
		if err != nil {
			return err
		}
		if signal.IsExit() {
			r.logger.Debug().Msg("Received exit signal")
			return nil
		}
		r.handleLine(ctx, signal.Text)
	}
}

func (r *Runner) handleLine(ctx context.Context, line string) {
	query, err := trigger.Parse(line)
	if err != nil {
		r.reporter.TriggerFailed(line, err)
		return
	}

	command, err := r.resolver.Resolve(query)
	if err != nil {
		r.reporter.TriggerFailed(line, err)
		return
	}

	r.reporter.CommandStarted(query, command)
	result, err := r.executor.Execute(ctx, command)
	if err != nil {
		r.reporter.TriggerFailed(line, err)
		return
	}
	r.reporter.CommandFinished(result)
}
