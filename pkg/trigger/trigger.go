package trigger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kevgo/tertestrial/pkg/errors"
)

// Trigger is a request to run tests. It is both the query received from the
// editor and the pattern configured in an action.
type Trigger struct {
	Command string  `json:"command" yaml:"command" toml:"command"`
	File    *string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
	Line    *uint   `json:"line,omitempty" yaml:"line,omitempty" toml:"line,omitempty"`
}

// New creates a trigger for the given command without file or line
func New(command string) Trigger {
	return Trigger{Command: command}
}

// WithFile returns a copy of the trigger with the given file
func (t Trigger) WithFile(file string) Trigger {
	t.File = &file
	return t
}

// WithLine returns a copy of the trigger with the given line
func (t Trigger) WithLine(line uint) Trigger {
	t.Line = &line
	return t
}

// HasFile reports whether the trigger carries a file
func (t Trigger) HasFile() bool {
	return t.File != nil
}

// HasLine reports whether the trigger carries a line
func (t Trigger) HasLine() bool {
	return t.Line != nil
}

// String renders the trigger for humans, e.g. {command: testFile, file: foo.rs}
func (t Trigger) String() string {
	parts := []string{"command: " + t.Command}
	if t.File != nil {
		parts = append(parts, "file: "+*t.File)
	}
	if t.Line != nil {
		parts = append(parts, fmt.Sprintf("line: %d", *t.Line))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

const formatHint = `Triggers are JSON objects on a single line, for example: {"command": "testFunction", "file": "foo_test.go", "line": 12}`

// Parse decodes one line received through the pipe into a Trigger
func Parse(text string) (Trigger, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Trigger{}, errors.New(errors.ErrTriggerParse, "received an empty trigger").
			WithHint(formatHint)
	}

	var result Trigger
	decoder := json.NewDecoder(bytes.NewReader([]byte(text)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&result); err != nil {
		return Trigger{}, errors.Wrapf(err, errors.ErrTriggerParse, "cannot parse trigger %q", text).
			WithHint(formatHint)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return Trigger{}, errors.Newf(errors.ErrTriggerParse, "unexpected text after trigger %q", text).
			WithHint(formatHint)
	}
	if result.Command == "" {
		return Trigger{}, errors.Newf(errors.ErrTriggerParse, "trigger %q has no command", text).
			WithHint(formatHint)
	}
	return result, nil
}
