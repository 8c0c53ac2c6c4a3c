package overlay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Severity classifies a toast.
type Severity int

const (
	Success Severity = iota
	Error
	Warning
	Info
)

// Default lifetimes when the caller passes none. Errors linger longer.
const (
	defaultToastLife = 3 * time.Second
	errorToastLife   = 5 * time.Second
	// removeDelay is the short closing transition between a dismiss
	// request and removal from the live set.
	removeDelay = 150 * time.Millisecond
)

// toastExpiredMsg fires when a toast's auto-dismiss timer elapses.
type toastExpiredMsg struct {
	id int
}

// toastGoneMsg fires when a closing toast's removal transition ends.
type toastGoneMsg struct {
	id int
}

// Toast is one live notification. Each toast runs its own timer and moves
// through visible -> closing -> removed independently of its neighbors.
type Toast struct {
	ID       int
	Message  string
	Severity Severity
	Duration time.Duration // 0 = manual close only
	closing  bool
}

// Toasts tracks the ordered set of live toasts. Construct with NewToasts
// and inject where needed.
type Toasts struct {
	live   []*Toast
	nextID int
}

// NewToasts creates an empty toast manager.
func NewToasts() *Toasts {
	return &Toasts{nextID: 1}
}

// Show creates a toast and returns the command driving its auto-dismiss
// timer. A zero duration disables auto-dismiss; the toast then lives until
// Dismiss is called.
func (t *Toasts) Show(message string, sev Severity, d time.Duration) tea.Cmd {
	toast := &Toast{ID: t.nextID, Message: message, Severity: sev, Duration: d}
	t.nextID++
	t.live = append(t.live, toast)
	if d <= 0 {
		return nil
	}
	id := toast.ID
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Success shows a success toast. An optional duration overrides the
// default; passing 0 disables auto-dismiss.
func (t *Toasts) Success(message string, d ...time.Duration) tea.Cmd {
	return t.Show(message, Success, pickDuration(d, defaultToastLife))
}

// Error shows an error toast.
func (t *Toasts) Error(message string, d ...time.Duration) tea.Cmd {
	return t.Show(message, Error, pickDuration(d, errorToastLife))
}

// Warning shows a warning toast.
func (t *Toasts) Warning(message string, d ...time.Duration) tea.Cmd {
	return t.Show(message, Warning, pickDuration(d, defaultToastLife))
}

// Info shows an info toast.
func (t *Toasts) Info(message string, d ...time.Duration) tea.Cmd {
	return t.Show(message, Info, pickDuration(d, defaultToastLife))
}

// Dismiss starts the closing transition for the toast with the given id.
// Dismissing an unknown or already-closing toast is a no-op, so repeated
// close requests cannot double-remove.
func (t *Toasts) Dismiss(id int) tea.Cmd {
	toast := t.find(id)
	if toast == nil || toast.closing {
		return nil
	}
	toast.closing = true
	return tea.Tick(removeDelay, func(time.Time) tea.Msg {
		return toastGoneMsg{id: id}
	})
}

// DismissOldest dismisses the oldest toast still visible. Bound to a key
// so manual-close toasts can be cleared.
func (t *Toasts) DismissOldest() tea.Cmd {
	for _, toast := range t.live {
		if !toast.closing {
			return t.Dismiss(toast.ID)
		}
	}
	return nil
}

// Update advances toast timers. It only consumes the package's own
// messages; everything else passes through untouched.
func (t *Toasts) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case toastExpiredMsg:
		return t.Dismiss(msg.id)
	case toastGoneMsg:
		t.remove(msg.id)
	}
	return nil
}

// Len returns the number of live toasts, closing ones included.
func (t *Toasts) Len() int { return len(t.live) }

// Has reports whether the toast with the given id is still live.
func (t *Toasts) Has(id int) bool { return t.find(id) != nil }

// Live returns the live toasts in creation order.
func (t *Toasts) Live() []*Toast { return t.live }

// View stacks the live toasts, oldest first. Closing toasts dim.
func (t *Toasts) View() string {
	if len(t.live) == 0 {
		return ""
	}
	var boxes []string
	for _, toast := range t.live {
		style := toast.style()
		if toast.closing {
			style = style.Faint(true)
		}
		boxes = append(boxes, style.Render(toast.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

func (toast *Toast) style() lipgloss.Style {
	switch toast.Severity {
	case Success:
		return Styles.ToastSuccess
	case Error:
		return Styles.ToastError
	case Warning:
		return Styles.ToastWarning
	}
	return Styles.ToastInfo
}

func (t *Toasts) find(id int) *Toast {
	for _, toast := range t.live {
		if toast.ID == id {
			return toast
		}
	}
	return nil
}

func (t *Toasts) remove(id int) {
	for i, toast := range t.live {
		if toast.ID == id {
			t.live = append(t.live[:i], t.live[i+1:]...)
			return
		}
	}
}

func pickDuration(d []time.Duration, fallback time.Duration) time.Duration {
	if len(d) > 0 {
		return d[0]
	}
	return fallback
}
