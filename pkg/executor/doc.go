// Package executor runs the shell commands that tertestrial resolved from
// triggers.
//
// Commands run one at a time through "sh -c", so the templates in the
// configuration file may use pipes, redirects and any other shell syntax.
// A failing test command is a normal outcome: its exit code is reported in
// the Result and is not an error.
package executor
