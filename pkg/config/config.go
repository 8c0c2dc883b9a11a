package config

import (
	"fmt"

	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/kevgo/tertestrial/pkg/trigger"
	"github.com/kevgo/tertestrial/pkg/vars"
)

// FileName is the name of the configuration file in the current directory
const FileName = ".testconfig.json"

// Action is executed when receiving a matching trigger
type Action struct {
	Trigger trigger.Trigger `json:"trigger" yaml:"trigger" toml:"trigger"`
	Run     string          `json:"run" yaml:"run" toml:"run"`
	Vars    []vars.Var      `json:"vars,omitempty" yaml:"vars,omitempty" toml:"vars,omitempty"`
}

// Configuration is the ordered rule table
type Configuration struct {
	Actions []Action `json:"actions" yaml:"actions" toml:"actions"`
}

// Validate checks the configuration for mistakes that do not depend on a trigger
func (c *Configuration) Validate() error {
	for i, action := range c.Actions {
		position := fmt.Sprintf("action %d", i+1)
		if action.Trigger.Command == "" {
			return errors.Newf(errors.ErrConfigInvalid, "%s has no trigger command", position).
				WithHint(`Every action needs a trigger with a "command", for example "testAll"`)
		}
		if action.Run == "" {
			return errors.Newf(errors.ErrConfigInvalid, "%s has no run command", position).
				WithHint(`Every action needs a "run" entry with the shell command to execute`)
		}
		for _, v := range action.Vars {
			if err := v.Validate(); err != nil {
				return errors.Wrapf(err, errors.ErrConfigInvalid, "%s is invalid", position)
			}
		}
	}
	return nil
}
