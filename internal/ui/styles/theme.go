// Package styles defines the terminal color theme.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorMuted   = lipgloss.Color("#6B7280")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	Header = lipgloss.NewStyle().
		Bold(true)

	Success = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	Warning = lipgloss.NewStyle().
		Foreground(ColorWarning)

	Error = lipgloss.NewStyle().
		Foreground(ColorError)

	Muted = lipgloss.NewStyle().
		Foreground(ColorMuted)

	Emphasis = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSuccess)
)
