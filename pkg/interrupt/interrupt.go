// Package interrupt converts the process interrupt into an Exit signal.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kevgo/tertestrial/pkg/logging"
	"github.com/kevgo/tertestrial/pkg/signals"
)

// Handle captures SIGINT and SIGTERM and sends a single Exit signal to
// sender on the first one. After that the default handling is restored, so
// a second Ctrl-C terminates the process. The returned function stops
// capturing.
func Handle(sender signals.Sender) (stop func()) {
	notifications := make(chan os.Signal, 1)
	signal.Notify(notifications, os.Interrupt, syscall.SIGTERM)
	release := func() { signal.Stop(notifications) }

	done := make(chan struct{})
	go forward(notifications, done, sender, release)

	var once sync.Once
	return func() {
		once.Do(func() {
			release()
			close(done)
		})
	}
}

// forward sends Exit for the first notification, calls release and returns
func forward(notifications <-chan os.Signal, done <-chan struct{}, sender signals.Sender, release func()) {
	logger := logging.GetLogger("interrupt")
	select {
	case sig := <-notifications:
		release()
		logger.Debug().Str("signal", sig.String()).Msg("Received interrupt")
		if err := sender.Send(signals.Exit()); err != nil {
			logger.Debug().Err(err).Msg("Consumer is gone, dropping exit signal")
		}
	case <-done:
	}
}
