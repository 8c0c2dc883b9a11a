package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kevgo/tertestrial/pkg/config"
	"github.com/kevgo/tertestrial/pkg/vars"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// RenderActions writes the configured actions in the given format
func RenderActions(w io.Writer, cfg *config.Configuration, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	default:
		return renderTable(w, cfg, format.Styled())
	}
}

func renderTable(w io.Writer, cfg *config.Configuration, styled bool) error {
	if len(cfg.Actions) == 0 {
		_, err := fmt.Fprintln(w, "No actions configured")
		return err
	}

	data := pterm.TableData{{"TRIGGER", "RUN", "VARS"}}
	for _, action := range cfg.Actions {
		data = append(data, []string{action.Trigger.String(), action.Run, formatVars(action.Vars)})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if !styled {
		plain := pterm.NewStyle()
		table = table.WithStyle(plain).WithHeaderStyle(plain).WithSeparatorStyle(plain)
	}

	rendered, err := table.Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}

func formatVars(list []vars.Var) string {
	parts := make([]string, 0, len(list))
	for _, v := range list {
		parts = append(parts, fmt.Sprintf("%s=%s(%s)", v.Name, v.Source, v.Filter))
	}
	return strings.Join(parts, ", ")
}
