// Package overlay provides the transient feedback primitives shared by
// every screen: toasts, the modal layer, and the loading indicator. The
// managers are plain values constructed once and injected into the app
// model; nothing here is a package-level singleton.
package overlay

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the overlay layer.
const (
	colorSuccess = "42"  // Green
	colorError   = "196" // Red
	colorWarning = "208" // Orange
	colorInfo    = "39"  // Blue
	colorAccent  = "86"  // Cyan - titles
	colorMuted   = "241" // Gray - hints
)

// Styles contains the shared style definitions for toasts and modals.
var Styles = struct {
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style

	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	ModalBody  lipgloss.Style
	ModalHint  lipgloss.Style

	Loading lipgloss.Style
}{
	ToastSuccess: toastStyle(colorSuccess),
	ToastError:   toastStyle(colorError),
	ToastWarning: toastStyle(colorWarning),
	ToastInfo:    toastStyle(colorInfo),
	ModalBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(1, 2).
		Margin(1),
	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	ModalBody: lipgloss.NewStyle(),
	ModalHint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Loading: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAccent)),
}

func toastStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1)
}
