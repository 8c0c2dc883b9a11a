package trigger

import (
	"regexp"

	"github.com/kevgo/tertestrial/pkg/errors"
)

// Matches reports whether the live query satisfies this trigger pattern.
// Command must be equal. File and line only constrain the query when the
// pattern has them.
func (t Trigger) Matches(query Trigger) (bool, error) {
	if t.Command != query.Command {
		return false, nil
	}
	if t.File != nil {
		if query.File == nil {
			return false, nil
		}
		matched, err := matchFile(*t.File, *query.File)
		if err != nil || !matched {
			return false, err
		}
	}
	if t.Line != nil {
		if query.Line == nil || *query.Line != *t.Line {
			return false, nil
		}
	}
	return true, nil
}

// matchFile compares literal patterns exactly and searches regex patterns
func matchFile(pattern, file string) (bool, error) {
	if !IsRegex(pattern) {
		return pattern == file, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid file pattern %q", pattern).
			WithHint("File patterns in the configuration file must be valid regular expressions")
	}
	return re.MatchString(file), nil
}

// IsRegex reports whether the pattern contains regular expression
// metacharacters. A dot alone does not count, so plain file names like
// "main.go" stay literal.
func IsRegex(pattern string) bool {
	for _, char := range pattern {
		switch char {
		case '\\', '^', '$', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
			return true
		}
	}
	return false
}
