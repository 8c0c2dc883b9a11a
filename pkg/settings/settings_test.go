package settings_test

import (
	"testing"

	"github.com/kevgo/tertestrial/pkg/settings"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("pipe", "", "")
	flags.Bool("dry-run", false, "")
	flags.CountP("verbose", "v", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	got, err := settings.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ".testconfig.json", got.Config)
	assert.Equal(t, ".testpipe", got.Pipe)
	assert.Equal(t, "/bin/sh", got.Shell)
	assert.False(t, got.DryRun)
	assert.Equal(t, 0, got.Verbose)
	assert.Equal(t, "auto", got.Output)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TERTESTRIAL_PIPE", "editor.pipe")
	t.Setenv("TERTESTRIAL_SHELL", "/bin/bash")
	t.Setenv("TERTESTRIAL_DRY_RUN", "true")

	got, err := settings.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "editor.pipe", got.Pipe)
	assert.Equal(t, "/bin/bash", got.Shell)
	assert.True(t, got.DryRun)
	assert.Equal(t, ".testconfig.json", got.Config)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TERTESTRIAL_PIPE", "env.pipe")
	t.Setenv("TERTESTRIAL_CONFIG", "env.json")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--pipe", "flag.pipe", "--dry-run", "-vv"}))

	got, err := settings.Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "flag.pipe", got.Pipe)
	assert.Equal(t, "env.json", got.Config, "unchanged flags must not override")
	assert.True(t, got.DryRun)
	assert.Equal(t, 2, got.Verbose)
}
