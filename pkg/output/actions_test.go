package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kevgo/tertestrial/pkg/config"
	"github.com/kevgo/tertestrial/pkg/trigger"
	"github.com/kevgo/tertestrial/pkg/vars"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleConfig() *config.Configuration {
	return &config.Configuration{Actions: []config.Action{
		{Trigger: trigger.New("testAll"), Run: "echo test all files"},
		{
			Trigger: trigger.New("testFunction").WithFile(`\.rs$`).WithLine(3),
			Run:     "cargo test {{name}}",
			Vars:    []vars.Var{{Name: "name", Source: vars.SourceFile, Filter: `(\w+)\.rs$`}},
		},
	}}
}

func TestRenderActions_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderActions(&buf, sampleConfig(), FormatText))

	out := buf.String()
	assert.Contains(t, out, "TRIGGER")
	assert.Contains(t, out, "RUN")
	assert.Contains(t, out, "{command: testAll}")
	assert.Contains(t, out, "echo test all files")
	assert.Contains(t, out, `{command: testFunction, file: \.rs$, line: 3}`)
	assert.Contains(t, out, `name=file((\w+)\.rs$)`)
}

func TestRenderActions_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderActions(&buf, &config.Configuration{}, FormatTerminal))
	assert.Equal(t, "No actions configured\n", buf.String())
}

func TestRenderActions_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderActions(&buf, sampleConfig(), FormatJSON))

	var decoded config.Configuration
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleConfig(), decoded)
}

func TestRenderActions_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderActions(&buf, sampleConfig(), FormatYAML))

	var decoded config.Configuration
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleConfig(), decoded)
}

func TestRenderActions_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderActions(&buf, sampleConfig(), FormatTOML))
	assert.Contains(t, buf.String(), "[[actions]]")

	var decoded config.Configuration
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleConfig(), decoded)
}
