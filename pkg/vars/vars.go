// Package vars computes additional placeholder values for run templates.
//
// A Var names a value, where to take it from, and a filter: a regular
// expression with exactly one capture group whose captured text becomes the
// value. New sources are added as a Source constant plus one case in Resolve.
package vars

import (
	"regexp"

	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/kevgo/tertestrial/pkg/template"
)

// Source describes where a variable takes its input from
type Source string

const (
	// SourceFile extracts the value from the trigger's file
	SourceFile Source = "file"
	// SourceLine is reserved
	SourceLine Source = "line"
	// SourceCurrentOrAboveLineContent is reserved; it needs the file content
	SourceCurrentOrAboveLineContent Source = "currentOrAboveLineContent"
)

// Sources lists all known sources
var Sources = []Source{SourceFile, SourceLine, SourceCurrentOrAboveLineContent}

// String returns the source as written in the configuration file
func (s Source) String() string {
	return string(s)
}

// Valid reports whether s is one of the known sources
func (s Source) Valid() bool {
	for _, known := range Sources {
		if s == known {
			return true
		}
	}
	return false
}

// Var is a named value derived from the already known values
type Var struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Source Source `json:"source" yaml:"source" toml:"source"`
	Filter string `json:"filter" yaml:"filter" toml:"filter"`
}

const captureHint = "filters in the Tertestrial configuration file can only contain one capture group"

// Validate checks the parts of a Var that do not depend on a trigger
func (v Var) Validate() error {
	if v.Name == "" {
		return errors.New(errors.ErrConfigInvalid, "variable without a name").
			WithHint(`Every entry in "vars" needs a "name"`)
	}
	if !v.Source.Valid() {
		return errors.Newf(errors.ErrConfigInvalid, "variable %q has unknown source %q", v.Name, v.Source).
			WithHint(`Valid sources are "file", "line" and "currentOrAboveLineContent"`)
	}
	return nil
}

// Resolve computes the value of v from the known values
func Resolve(v Var, known *template.Values) (string, error) {
	switch v.Source {
	case SourceFile:
		return resolveFile(v, known)
	case SourceLine, SourceCurrentOrAboveLineContent:
		return "", errors.Newf(errors.ErrVarUnsupported, "variable source %q is not supported yet", v.Source).
			WithDetail("var", v.Name).
			WithHint(`Please use the "file" source`)
	default:
		return "", v.Validate()
	}
}

func resolveFile(v Var, known *template.Values) (string, error) {
	re, err := compileFilter(v)
	if err != nil {
		return "", err
	}
	file, ok := known.Get("file")
	if !ok {
		return "", errors.Newf(errors.ErrVarMissingInput, "variable %q needs a file but the trigger has none", v.Name).
			WithHint("Restrict this action to triggers that contain a file")
	}
	captures := re.FindStringSubmatch(file)
	if captures == nil {
		return "", errors.Newf(errors.ErrVarNoMatch, "filter %q of variable %q does not match file %q", v.Filter, v.Name, file).
			WithHint("Please adjust the filter so that it matches all files this action triggers for")
	}
	return captures[1], nil
}

// compileFilter compiles the filter and enforces exactly one capture group
func compileFilter(v Var) (*regexp.Regexp, error) {
	re, err := regexp.Compile(v.Filter)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid filter %q for variable %q", v.Filter, v.Name).
			WithHint("Filters must be valid regular expressions")
	}
	if groups := re.NumSubexp(); groups != 1 {
		return nil, errors.Newf(errors.ErrVarCapture, "found %d captures", groups).
			WithDetail("var", v.Name).
			WithHint(captureHint)
	}
	return re, nil
}
