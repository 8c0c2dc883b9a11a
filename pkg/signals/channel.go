package signals

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when sending to or receiving from a closed Channel
var ErrClosed = errors.New("signal channel closed")

// Sender is the producer side of a Channel
type Sender interface {
	Send(Signal) error
}

// Receiver is the consumer side of a Channel
type Receiver interface {
	Receive(ctx context.Context) (Signal, error)
}

// Channel is an unbounded FIFO queue of signals with any number of
// producers and one consumer. Send never blocks.
type Channel struct {
	mu     sync.Mutex
	queue  []Signal
	closed bool
	ready  chan struct{}
}

// NewChannel creates an empty channel
func NewChannel() *Channel {
	return &Channel{ready: make(chan struct{}, 1)}
}

// Send enqueues a signal. It fails with ErrClosed once the consumer closed
// the channel.
func (c *Channel) Send(signal Signal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.queue = append(c.queue, signal)
	// ready holds at most one token, the consumer drains the whole queue
	select {
	case c.ready <- struct{}{}:
	default:
	}
	return nil
}

// Receive blocks until a signal is available, the channel is closed or ctx
// is done. Only one goroutine may receive.
func (c *Channel) Receive(ctx context.Context) (Signal, error) {
	for {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return Signal{}, ErrClosed
		}
		if len(c.queue) > 0 {
			signal := c.queue[0]
			c.queue[0] = Signal{}
			c.queue = c.queue[1:]
			c.mu.Unlock()
			return signal, nil
		}
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return Signal{}, ctx.Err()
		case <-c.ready:
		}
	}
}

// Close drops pending signals and makes all further sends fail.
// Closing twice is a no-op.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.queue = nil
	close(c.ready)
}

// Len returns the number of pending signals
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}
