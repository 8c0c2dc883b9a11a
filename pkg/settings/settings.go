// Package settings holds the runtime settings of tertestrial. Values come
// from defaults, then TERTESTRIAL_* environment variables, then command-line
// flags, each layer overriding the previous one.
package settings

import (
	"fmt"
	"strings"

	"github.com/kevgo/tertestrial/pkg/config"
	"github.com/kevgo/tertestrial/pkg/executor"
	"github.com/kevgo/tertestrial/pkg/pipe"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read into the settings
const EnvPrefix = "TERTESTRIAL_"

// Settings are the runtime settings
type Settings struct {
	Config  string `koanf:"config"`
	Pipe    string `koanf:"pipe"`
	Shell   string `koanf:"shell"`
	DryRun  bool   `koanf:"dry_run"`
	Verbose int    `koanf:"verbose"`
	Output  string `koanf:"output"`
}

// Defaults returns the default settings as a flat map
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"config":  config.FileName,
		"pipe":    pipe.DefaultName,
		"shell":   executor.DefaultShell,
		"dry_run": false,
		"verbose": 0,
		"output":  "auto",
	}
}

// Load merges defaults, environment and flags. flags may be nil.
func Load(flags *pflag.FlagSet) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// TERTESTRIAL_DRY_RUN -> dry_run
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var result Settings
	if err := k.Unmarshal("", &result); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	return &result, nil
}
