package pipe

import (
	"bufio"

	"github.com/kevgo/tertestrial/pkg/logging"
	"github.com/kevgo/tertestrial/pkg/signals"
	"github.com/rs/zerolog"
)

// maxLineLength bounds a single trigger line
const maxLineLength = 1024 * 1024

// Listen reads the pipe in a background goroutine and forwards every line
// as a Line signal. Writers open and close the pipe for each message, so
// after the end of the stream the pipe is opened again. A read error sends
// Exit. The goroutine ends when the channel no longer accepts signals or the
// pipe can no longer be opened.
func Listen(p *Pipe, sender signals.Sender) {
	logger := logging.GetLogger("pipe.listener")
	go func() {
		for {
			if !listenOnce(p, sender, logger) {
				logger.Debug().Str("pipe", p.Path).Msg("Listener stopped")
				return
			}
		}
	}()
}

// listenOnce performs one open/read cycle and reports whether to continue
func listenOnce(p *Pipe, sender signals.Sender, logger zerolog.Logger) bool {
	reader, err := p.Open()
	if err != nil {
		logger.Error().Err(err).Msg("Cannot open pipe")
		_ = sender.Send(signals.Exit())
		return false
	}
	defer func() { _ = reader.Close() }()

	logger.Trace().Str("pipe", p.Path).Msg("Pipe opened")

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		text := scanner.Text()
		logger.Debug().Str("line", text).Msg("Received line")
		if err := sender.Send(signals.Line(text)); err != nil {
			return false
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Msg("Error reading line")
		if sendErr := sender.Send(signals.Exit()); sendErr != nil {
			return false
		}
	}
	return true
}
