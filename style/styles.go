// Package style centralizes the lipgloss styles used by the demo
// dashboard chrome. Chart colors themselves travel through layout.Color.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the dashboard.
type Styles struct {
	// Chrome
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Footer   lipgloss.Style

	// Status
	ModeActive lipgloss.Style
	ModeIdle   lipgloss.Style

	// Misc
	Muted lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		ModeActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("71")), // muted green
		ModeIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")),
	}
}
