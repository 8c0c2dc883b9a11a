package config

import (
	"strconv"

	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/kevgo/tertestrial/pkg/logging"
	"github.com/kevgo/tertestrial/pkg/template"
	"github.com/kevgo/tertestrial/pkg/trigger"
	"github.com/kevgo/tertestrial/pkg/vars"
)

// Resolve returns the shell command for the first action matching query
func (c *Configuration) Resolve(query trigger.Trigger) (string, error) {
	logger := logging.GetLogger("config.resolve")

	for i := range c.Actions {
		action := &c.Actions[i]
		matched, err := action.Trigger.Matches(query)
		if err != nil {
			return "", err
		}
		if !matched {
			continue
		}
		logger.Debug().
			Int("action", i+1).
			Str("pattern", action.Trigger.String()).
			Str("trigger", query.String()).
			Msg("Trigger matched action")
		return Format(action, query)
	}

	return "", errors.Newf(errors.ErrTriggerNoMatch, "cannot determine command for trigger: %s", query).
		WithHint("Please make sure that this trigger is listed in your configuration file")
}

// Format fills in the placeholders of the action's run template
func Format(action *Action, query trigger.Trigger) (string, error) {
	values := template.NewValues()
	values.Set("command", query.Command)
	if query.File != nil {
		values.Set("file", *query.File)
	}
	if query.Line != nil {
		values.Set("line", strconv.FormatUint(uint64(*query.Line), 10))
	}
	for _, v := range action.Vars {
		value, err := vars.Resolve(v, values)
		if err != nil {
			return "", err
		}
		values.Set(v.Name, value)
	}
	return template.Render(action.Run, values), nil
}
