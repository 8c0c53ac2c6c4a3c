package table

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchDebounce is the quiet period after the last keystroke before the
// search term commits.
const searchDebounce = 300 * time.Millisecond

// debounceMsg fires when a search debounce timer elapses. owner is the id
// of the table that armed it: messages are broadcast across pages, so a
// timer must never commit another table's pending term. gen identifies the
// keystroke; stale timers are ignored.
type debounceMsg struct {
	owner int
	gen   int
}

// Update handles table interaction. While the search box has focus,
// keystrokes feed the input and arm the debounce timer; otherwise keys
// drive pagination and sorting.
func (m *Model[T]) Update(msg tea.Msg) (*Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		if msg.owner != m.id || msg.gen != m.gen {
			return m, nil
		}
		if m.pending != m.search {
			m.search = m.pending
			m.page = 1
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "/":
			if m.searchable {
				m.searching = true
				return m, m.input.Focus()
			}
		case "up", "k":
			if m.rowCursor > 0 {
				m.rowCursor--
			}
		case "down", "j":
			if n := len(m.PageRows()); m.rowCursor < n-1 {
				m.rowCursor++
			}
		case "left", "h":
			m.SelectPage(m.page - 1)
		case "right", "l":
			m.SelectPage(m.page + 1)
		case "tab":
			m.moveCursor(1)
		case "shift+tab":
			m.moveCursor(-1)
		case "s", "enter":
			if m.sortable && m.colCursor < len(m.cols) {
				m.ToggleSort(m.cols[m.colCursor].Key)
			}
		}
	}
	return m, nil
}

// updateSearch routes a keystroke into the focused search box.
func (m *Model[T]) updateSearch(msg tea.KeyMsg) (*Model[T], tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Invalidate any armed timer so an abandoned search never
		// commits later.
		m.gen++
		m.searching = false
		m.input.Blur()
		return m, nil
	case "enter":
		// Commit immediately, skipping the pending debounce.
		m.gen++
		if m.pending != m.search {
			m.search = m.pending
			m.page = 1
		}
		m.searching = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.pending {
		m.pending = v
		m.gen++
		id, gen := m.id, m.gen
		return m, tea.Batch(cmd, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return debounceMsg{owner: id, gen: gen}
		}))
	}
	return m, cmd
}

// moveCursor shifts the header cursor to the next column with a sortable
// value in the given direction, wrapping around.
func (m *Model[T]) moveCursor(delta int) {
	if !m.sortable || len(m.cols) == 0 {
		return
	}
	for i := 0; i < len(m.cols); i++ {
		m.colCursor = (m.colCursor + delta + len(m.cols)) % len(m.cols)
		if m.cols[m.colCursor].Value != nil {
			return
		}
	}
}
