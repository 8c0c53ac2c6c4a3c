package ui

import tea "github.com/charmbracelet/bubbletea"

// Page is the unit of composition: one navigable screen with its own
// model, update, and view.
type Page interface {
	// Title is the label shown in the nav bar.
	Title() string
	// Init returns the page's initial load command.
	Init() tea.Cmd
	Update(tea.Msg) (Page, tea.Cmd)
	View(width int) string
	// Capturing reports whether the page is consuming raw keystrokes
	// (an open form or a focused search box), which suspends the
	// global keybindings.
	Capturing() bool
}
