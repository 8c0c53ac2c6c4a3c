package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxCellWidth = 28

// styles shared by every table instance.
var styles = struct {
	Header     lipgloss.Style
	RowCur     lipgloss.Style
	HeaderCur  lipgloss.Style
	HeaderSort lipgloss.Style
	Cell       lipgloss.Style
	Empty      lipgloss.Style
	Pager      lipgloss.Style
	PagerCur   lipgloss.Style
	PagerDim   lipgloss.Style
}{
	Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
	RowCur:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	HeaderCur:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	HeaderSort: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Cell:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	Pager:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	PagerCur:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	PagerDim:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// View renders the table: search line, header, page rows (or an empty
// placeholder), and the pagination bar. Each call recomputes from current
// state, so there is no render cache to invalidate.
func (m *Model[T]) View() string {
	var b strings.Builder

	if m.searchable {
		if m.searching {
			b.WriteString(m.input.View() + "\n")
		} else if m.search != "" {
			b.WriteString(styles.PagerDim.Render("/ "+m.search) + "\n")
		} else {
			b.WriteString(styles.PagerDim.Render("/ search") + "\n")
		}
	}

	rows := m.PageRows()
	widths := m.columnWidths(rows)

	// Header line.
	var hdr []string
	for i, c := range m.cols {
		title := c.Title
		if m.sortable && c.Key == m.sortKey {
			if m.sortAsc {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		style := styles.Header
		if m.sortable && c.Key == m.sortKey {
			style = styles.HeaderSort
		}
		if m.sortable && i == m.colCursor && !m.searching {
			style = styles.HeaderCur
		}
		hdr = append(hdr, style.Render(pad(title, widths[i])))
	}
	b.WriteString("  " + strings.Join(hdr, "  ") + "\n")

	if len(rows) == 0 {
		span := 0
		for _, w := range widths {
			span += w + 2
		}
		if span > 2 {
			span -= 2
		}
		b.WriteString("  " + styles.Empty.Render(pad("no matching records", span)) + "\n")
	}
	cur := m.rowCursor
	if cur >= len(rows) && len(rows) > 0 {
		cur = len(rows) - 1
	}
	for ri, r := range rows {
		cellStyle := styles.Cell
		bullet := "  "
		if ri == cur {
			cellStyle = styles.RowCur
			bullet = "▸ "
		}
		var cells []string
		for i, c := range m.cols {
			cells = append(cells, cellStyle.Render(pad(m.cellFor(c, r), widths[i])))
		}
		b.WriteString(bullet + strings.Join(cells, "  ") + "\n")
	}

	if m.paginate {
		b.WriteString(m.pagerView())
	}
	return b.String()
}

// cellFor returns the display text for one cell.
func (m *Model[T]) cellFor(c Column[T], r T) string {
	if c.Render != nil {
		return c.Render(r)
	}
	if c.Value == nil {
		return ""
	}
	return cellText(c.Value(r))
}

// columnWidths sizes each column to its widest visible cell or title,
// capped at maxCellWidth.
func (m *Model[T]) columnWidths(rows []T) []int {
	widths := make([]int, len(m.cols))
	for i, c := range m.cols {
		w := lipgloss.Width(c.Title) + 2 // room for the sort marker
		for _, r := range rows {
			if cw := lipgloss.Width(m.cellFor(c, r)); cw > w {
				w = cw
			}
		}
		if w > maxCellWidth {
			w = maxCellWidth
		}
		widths[i] = w
	}
	return widths
}

// pagerView renders "‹ prev  1 2 [3] 4 5  next ›" with a window of at
// most two pages either side of the current one. Prev/next dim at the
// boundaries; there are no jump-to-first/last buttons.
func (m *Model[T]) pagerView() string {
	total := m.TotalPages()
	var parts []string

	prev := styles.Pager
	if m.page == 1 {
		prev = styles.PagerDim
	}
	parts = append(parts, prev.Render("‹ prev"))

	lo, hi := m.page-2, m.page+2
	if lo < 1 {
		lo = 1
	}
	if hi > total {
		hi = total
	}
	for p := lo; p <= hi; p++ {
		if p == m.page {
			parts = append(parts, styles.PagerCur.Render(fmt.Sprintf("[%d]", p)))
		} else {
			parts = append(parts, styles.Pager.Render(fmt.Sprintf("%d", p)))
		}
	}

	next := styles.Pager
	if m.page == total {
		next = styles.PagerDim
	}
	parts = append(parts, next.Render("next ›"))
	return strings.Join(parts, " ")
}

// pad truncates or right-pads s to width w.
func pad(s string, w int) string {
	if lipgloss.Width(s) > w {
		if w > 1 {
			rs := []rune(s)
			if len(rs) > w-1 {
				rs = rs[:w-1]
			}
			return string(rs) + "…"
		}
		return "…"
	}
	return s + strings.Repeat(" ", w-lipgloss.Width(s))
}
