// Package style defines the terminal styles of tertestrial's output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// CommandStyle highlights the shell command about to run
	CommandStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Render applies s to text when styled is true and returns text unchanged otherwise
func Render(s lipgloss.Style, styled bool, text string) string {
	if !styled {
		return text
	}
	return s.Render(text)
}
