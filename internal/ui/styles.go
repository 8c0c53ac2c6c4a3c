package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI.
const (
	ColorAccent    = "86"  // Cyan - titles, highlights
	ColorHighlight = "205" // Magenta - selected items
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across pages.
var Styles = struct {
	Title      lipgloss.Style // Bold accent - page titles
	NavActive  lipgloss.Style // Selected nav entry
	NavIdle    lipgloss.Style // Other nav entries
	Hint       lipgloss.Style // Help/hint text
	Normal     lipgloss.Style // Normal text
	FieldLabel lipgloss.Style // Form field labels
	FieldError lipgloss.Style // Inline validation messages
	Stat       lipgloss.Style // Report stat values
	StatLabel  lipgloss.Style // Report stat labels
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	NavActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	NavIdle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	FieldLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	FieldError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Stat: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	StatLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
