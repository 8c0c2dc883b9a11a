// Package signals carries the events that drive tertestrial: lines received
// through the pipe and requests to exit. Producers (the pipe listener and the
// interrupt handler) send into one Channel, a single consumer receives.
package signals

import "fmt"

// Kind distinguishes the variants of Signal
type Kind int

const (
	// KindLine is a line of text received through the pipe
	KindLine Kind = iota
	// KindExit asks the consumer to stop
	KindExit
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Signal is either Line(text) or Exit
type Signal struct {
	Kind Kind
	Text string
}

// Line creates a signal carrying a line received through the pipe
func Line(text string) Signal {
	return Signal{Kind: KindLine, Text: text}
}

// Exit creates a signal that stops the consumer
func Exit() Signal {
	return Signal{Kind: KindExit}
}

// IsExit reports whether the signal asks to stop
func (s Signal) IsExit() bool {
	return s.Kind == KindExit
}

// String renders the signal for logs
func (s Signal) String() string {
	if s.Kind == KindLine {
		return fmt.Sprintf("Line(%q)", s.Text)
	}
	return s.Kind.String()
}
