package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmResultMsg carries the single outcome of a confirmation modal.
type ConfirmResultMsg struct {
	ID int
	OK bool
}

// modalState is the one active modal. A confirm modal resolves exactly
// once through its result channel; resolved guards against a second
// resolution from racing dismiss paths.
type modalState struct {
	id       int
	title    string
	body     string
	confirm  bool
	closable bool
	result   chan bool
	resolved bool
}

// Modal manages the single active modal layer. Showing a new modal while
// one is active supersedes it: a superseded confirm resolves false so its
// waiter is never left hanging.
type Modal struct {
	current *modalState
	nextID  int
}

// NewModal creates an empty modal manager.
func NewModal() *Modal {
	return &Modal{nextID: 1}
}

// ShowOption tweaks a modal before it is shown.
type ShowOption func(*modalState)

// NotClosable makes the modal ignore Esc and backdrop clicks; only an
// explicit Hide or a confirm choice closes it.
func NotClosable() ShowOption {
	return func(s *modalState) { s.closable = false }
}

// Show displays an informational modal with the given body text,
// superseding any active modal. Esc or a click outside closes it unless
// NotClosable is given.
func (m *Modal) Show(title, body string, opts ...ShowOption) {
	m.supersede()
	s := &modalState{id: m.nextID, title: title, body: body, closable: true}
	m.nextID++
	for _, opt := range opts {
		opt(s)
	}
	m.current = s
}

// Confirm displays a yes/no modal and returns a command that completes
// with a ConfirmResultMsg once the user decides. The caller's flow
// suspends on the command; exactly one outcome is ever delivered:
// y/Enter -> true, Esc, n, or backdrop -> false.
func (m *Modal) Confirm(message, title string, opts ...ShowOption) tea.Cmd {
	m.supersede()
	s := &modalState{
		id:       m.nextID,
		title:    title,
		body:     message,
		confirm:  true,
		closable: true,
		result:   make(chan bool, 1),
	}
	m.nextID++
	for _, opt := range opts {
		opt(s)
	}
	m.current = s

	id := s.id
	ch := s.result
	return func() tea.Msg {
		return ConfirmResultMsg{ID: id, OK: <-ch}
	}
}

// Hide closes the active modal. A pending confirm resolves false.
func (m *Modal) Hide() {
	m.supersede()
}

// Active reports whether a modal is showing.
func (m *Modal) Active() bool { return m.current != nil }

// ActiveID returns the id of the active modal, or 0.
func (m *Modal) ActiveID() int {
	if m.current == nil {
		return 0
	}
	return m.current.id
}

// Update handles input while a modal is active. The second result reports
// whether the message was consumed; while a modal is showing, all key and
// mouse input stops here.
func (m *Modal) Update(msg tea.Msg) (tea.Cmd, bool) {
	if m.current == nil {
		return nil, false
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "enter":
			if m.current.confirm {
				m.resolve(true)
				m.current = nil
			} else {
				m.current = nil
			}
		case "n", "esc":
			if !m.current.closable {
				return nil, true
			}
			m.resolve(false)
			m.current = nil
		}
		return nil, true
	case tea.MouseMsg:
		// Any click lands on the backdrop in a full-screen terminal
		// modal; route it to the dismiss path.
		if msg.Action == tea.MouseActionPress {
			if !m.current.closable {
				return nil, true
			}
			m.resolve(false)
			m.current = nil
		}
		return nil, true
	}
	return nil, false
}

// View renders the modal box centered in the given area, or "" when no
// modal is active.
func (m *Modal) View(width, height int) string {
	if m.current == nil {
		return ""
	}
	var b strings.Builder
	if m.current.title != "" {
		b.WriteString(Styles.ModalTitle.Render(m.current.title) + "\n\n")
	}
	b.WriteString(Styles.ModalBody.Render(m.current.body))
	if m.current.confirm {
		b.WriteString("\n\n" + Styles.ModalHint.Render("y/Enter: confirm  n/Esc: cancel"))
	} else if m.current.closable {
		b.WriteString("\n\n" + Styles.ModalHint.Render("Esc: close"))
	}
	box := Styles.ModalBox.Render(b.String())
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// resolve delivers the confirm outcome exactly once.
func (m *Modal) resolve(ok bool) {
	s := m.current
	if s == nil || !s.confirm || s.resolved {
		return
	}
	s.resolved = true
	s.result <- ok
}

// supersede closes the current modal, resolving a pending confirm false.
func (m *Modal) supersede() {
	if m.current == nil {
		return
	}
	m.resolve(false)
	m.current = nil
}
