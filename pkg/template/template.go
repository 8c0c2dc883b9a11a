// Package template substitutes {{ placeholder }} tokens in run templates.
package template

import (
	"fmt"
	"regexp"
)

// Values maps placeholder names to their replacement, remembering the order
// in which names were first set.
type Values struct {
	names  []string
	values map[string]string
}

// NewValues creates an empty value store
func NewValues() *Values {
	return &Values{values: make(map[string]string)}
}

// Set stores a value, overwriting a previous value with the same name
func (v *Values) Set(name, value string) {
	if _, exists := v.values[name]; !exists {
		v.names = append(v.names, name)
	}
	v.values[name] = value
}

// Get returns the value for name
func (v *Values) Get(name string) (string, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Render replaces the placeholders of all known values in text.
// Placeholders without a value stay untouched.
func Render(text string, values *Values) string {
	for _, name := range values.names {
		text = Replace(text, name, values.values[name])
	}
	return text
}

// Replace substitutes every occurrence of {{placeholder}} in text, allowing
// whitespace inside the braces. The replacement is inserted literally.
func Replace(text, placeholder, replacement string) string {
	re := regexp.MustCompile(fmt.Sprintf(`\{\{\s*%s\s*\}\}`, regexp.QuoteMeta(placeholder)))
	return re.ReplaceAllLiteralString(text, replacement)
}
