package output

import (
	"fmt"
	"io"
	"time"

	"github.com/kevgo/tertestrial/pkg/executor"
	"github.com/kevgo/tertestrial/pkg/style"
	"github.com/kevgo/tertestrial/pkg/trigger"
)

// Console reports the progress of the dispatch loop on the terminal
type Console struct {
	out    io.Writer
	errOut io.Writer
	styled bool
}

// NewConsole creates a console reporter
func NewConsole(out, errOut io.Writer, styled bool) *Console {
	return &Console{out: out, errOut: errOut, styled: styled}
}

// Listening announces that tertestrial waits for triggers
func (c *Console) Listening(pipePath string) {
	fmt.Fprintln(c.out, style.Render(style.MutedStyle, c.styled, "Tertestrial is listening on "+pipePath+", press Ctrl-C to exit"))
}

// CommandStarted prints the command about to run
func (c *Console) CommandStarted(query trigger.Trigger, command string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, style.Render(style.MutedStyle, c.styled, query.String()))
	fmt.Fprintln(c.out, style.Render(style.CommandStyle, c.styled, command))
}

// CommandFinished prints the outcome of the command
func (c *Console) CommandFinished(result executor.Result) {
	if result.DryRun {
		return
	}
	if result.Success() {
		fmt.Fprintln(c.out, style.Render(style.SuccessStyle, c.styled, fmt.Sprintf("SUCCESS (%s)", result.Duration.Round(time.Millisecond))))
		return
	}
	fmt.Fprintln(c.out, style.Render(style.ErrorStyle, c.styled, fmt.Sprintf("FAILED with exit code %d (%s)", result.ExitCode, result.Duration.Round(time.Millisecond))))
}

// TriggerFailed prints why a trigger could not be run
func (c *Console) TriggerFailed(line string, err error) {
	fmt.Fprintln(c.errOut)
	fmt.Fprintln(c.errOut, style.Render(style.MutedStyle, c.styled, "received: "+line))
	fmt.Fprintln(c.errOut, RenderError(err, c.styled))
}
