package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// DefaultScope is used when callers show or hide without naming a scope.
// Callers mixing default-scope and named-scope calls must pair them
// consistently, or the indicator stays visible; that is the caller's bug,
// not corrected here.
const DefaultScope = "global"

// Loading tracks a set of active scope keys behind one shared spinner.
// The indicator is visible exactly while the set is non-empty, so
// independent in-flight operations share it without one completion hiding
// another's state. Duplicate Show calls with one key are idempotent (set
// membership, not a counter).
type Loading struct {
	scopes map[string]struct{}
	spin   spinner.Model
}

// NewLoading creates an idle loading manager.
func NewLoading() *Loading {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))
	return &Loading{
		scopes: make(map[string]struct{}),
		spin:   s,
	}
}

// Show marks a scope active and returns the spinner tick command when the
// indicator just became visible.
func (l *Loading) Show(scope ...string) tea.Cmd {
	wasIdle := len(l.scopes) == 0
	l.scopes[scopeKey(scope)] = struct{}{}
	if wasIdle {
		return l.spin.Tick
	}
	return nil
}

// Hide clears a scope. Other scopes' in-flight state keeps the indicator
// visible.
func (l *Loading) Hide(scope ...string) {
	delete(l.scopes, scopeKey(scope))
}

// Visible reports whether any scope is active.
func (l *Loading) Visible() bool { return len(l.scopes) > 0 }

// Active reports whether the given scope is in the set.
func (l *Loading) Active(scope string) bool {
	_, ok := l.scopes[scope]
	return ok
}

// Update keeps the spinner animating while any scope is active.
func (l *Loading) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); ok && l.Visible() {
		var cmd tea.Cmd
		l.spin, cmd = l.spin.Update(msg)
		return cmd
	}
	return nil
}

// View renders the indicator, or "" while idle.
func (l *Loading) View() string {
	if !l.Visible() {
		return ""
	}
	return l.spin.View() + Styles.Loading.Render(" loading…")
}

func scopeKey(scope []string) string {
	if len(scope) > 0 && scope[0] != "" {
		return scope[0]
	}
	return DefaultScope
}
