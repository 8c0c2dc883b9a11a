package trigger_test

import (
	"testing"

	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/kevgo/tertestrial/pkg/trigger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected trigger.Trigger
	}{
		{
			name:     "command only",
			input:    `{"command": "testAll"}`,
			expected: trigger.New("testAll"),
		},
		{
			name:     "command and file",
			input:    `{"command": "testFile", "file": "src/lib.rs"}`,
			expected: trigger.New("testFile").WithFile("src/lib.rs"),
		},
		{
			name:     "command file and line",
			input:    `{"command":"testFunction","file":"foo_test.go","line":12}`,
			expected: trigger.New("testFunction").WithFile("foo_test.go").WithLine(12),
		},
		{
			name:     "surrounding whitespace",
			input:    "  {\"command\": \"testAll\"}\r\n",
			expected: trigger.New("testAll"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := trigger.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty line", ""},
		{"blank line", "   "},
		{"not json", "testAll"},
		{"missing command", `{"file": "foo.rs"}`},
		{"negative line", `{"command": "testFunction", "line": -1}`},
		{"unknown field", `{"command": "testAll", "fiel": "foo.rs"}`},
		{"trailing text", `{"command": "testAll"} junk`},
		{"two objects", `{"command": "testAll"}{"command": "testFile"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := trigger.Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrTriggerParse))
			assert.NotEmpty(t, errors.GetHint(err))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "{command: testAll}", trigger.New("testAll").String())
	assert.Equal(t, "{command: testFile, file: foo.rs}", trigger.New("testFile").WithFile("foo.rs").String())
	assert.Equal(t, "{command: testFunction, file: foo.rs, line: 3}",
		trigger.New("testFunction").WithFile("foo.rs").WithLine(3).String())
}

func TestWithDoesNotMutate(t *testing.T) {
	base := trigger.New("testFile")
	withFile := base.WithFile("a.rs")
	assert.False(t, base.HasFile())
	assert.True(t, withFile.HasFile())
	assert.False(t, withFile.HasLine())
}
