// Package table implements a reusable data table over an in-memory record
// collection: case-insensitive search, stable column sort, and windowed
// pagination. The engine is generic over the record type; columns declare
// typed accessors so each caller's schema is checked at compile time while
// the engine itself stays schema-agnostic.
package table

import "github.com/charmbracelet/bubbles/textinput"

// Column maps one record field to a displayed column.
type Column[T any] struct {
	Key   string
	Title string
	// Value extracts the field used for search and sort. nil marks a
	// synthetic column (e.g. actions) that never matches a search and
	// never sorts.
	Value func(T) any
	// Render overrides the default cell text. When nil the stringified
	// Value is shown.
	Render func(T) string
}

// modelSeq hands out instance ids so timer messages can name the table
// that armed them; messages are broadcast, and a counter alone would
// collide across instances.
var modelSeq int

// Model is the table engine state. Construct with New.
type Model[T any] struct {
	id   int
	cols []Column[T]
	data []T

	page     int
	pageSize int
	sortKey  string
	sortAsc  bool
	search   string

	searchable bool
	sortable   bool
	paginate   bool

	// Search box state. pending holds uncommitted input while the
	// debounce timer runs; gen discards stale timers.
	input     textinput.Model
	searching bool
	pending   string
	gen       int

	// colCursor is the header index used to pick the sort column;
	// rowCursor selects a row on the current page.
	colCursor int
	rowCursor int

	width int
}

// Option configures a Model at construction.
type Option[T any] func(*Model[T])

// WithData sets the initial records.
func WithData[T any](rows []T) Option[T] {
	return func(m *Model[T]) { m.data = rows }
}

// WithPageSize overrides the default page size of 10.
func WithPageSize[T any](n int) Option[T] {
	return func(m *Model[T]) {
		if n > 0 {
			m.pageSize = n
		}
	}
}

// WithoutSearch disables the search box.
func WithoutSearch[T any]() Option[T] {
	return func(m *Model[T]) { m.searchable = false }
}

// WithoutSort disables header sorting.
func WithoutSort[T any]() Option[T] {
	return func(m *Model[T]) { m.sortable = false }
}

// WithoutPagination renders the full filtered set on one page.
func WithoutPagination[T any]() Option[T] {
	return func(m *Model[T]) { m.paginate = false }
}

// New creates a table over cols. Defaults: empty data, searchable,
// sortable, paginated with page size 10, page 1, no sort column, empty
// search term.
func New[T any](cols []Column[T], opts ...Option[T]) *Model[T] {
	in := textinput.New()
	in.Placeholder = "search"
	in.Prompt = "/ "
	in.CharLimit = 64
	modelSeq++
	m := &Model[T]{
		id:         modelSeq,
		cols:       cols,
		page:       1,
		pageSize:   10,
		sortAsc:    true,
		searchable: true,
		sortable:   true,
		paginate:   true,
		input:      in,
		width:      80,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// UpdateData replaces the backing records. The current page resets to 1;
// sort column, direction, and search term are preserved.
func (m *Model[T]) UpdateData(rows []T) {
	m.data = rows
	m.page = 1
	m.rowCursor = 0
}

// Refresh is a render hint only: the view recomputes from current state on
// the next View call, so no state changes here.
func (m *Model[T]) Refresh() {}

// SetSearch commits a search term immediately (bypassing the input
// debounce) and resets to the first page.
func (m *Model[T]) SetSearch(term string) {
	if !m.searchable {
		return
	}
	m.search = term
	m.pending = term
	m.input.SetValue(term)
	m.page = 1
}

// ToggleSort sorts on the column with the given key: a repeat toggle flips
// direction, a new column starts ascending. The page does not reset.
// Unknown keys and synthetic columns are ignored.
func (m *Model[T]) ToggleSort(key string) {
	if !m.sortable {
		return
	}
	for _, c := range m.cols {
		if c.Key != key || c.Value == nil {
			continue
		}
		if m.sortKey == key {
			m.sortAsc = !m.sortAsc
		} else {
			m.sortKey = key
			m.sortAsc = true
		}
		return
	}
}

// SelectPage moves to page n. Out-of-range requests and the current page
// are no-ops.
func (m *Model[T]) SelectPage(n int) {
	if !m.paginate || n == m.page || n < 1 || n > m.TotalPages() {
		return
	}
	m.page = n
	m.rowCursor = 0
}

// SetWidth sets the render width.
func (m *Model[T]) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

// Page returns the current 1-based page.
func (m *Model[T]) Page() int { return m.page }

// PageSize returns the configured page size.
func (m *Model[T]) PageSize() int { return m.pageSize }

// Search returns the committed search term.
func (m *Model[T]) Search() string { return m.search }

// SortKey returns the active sort column key, or "" when unsorted. The
// second result reports the direction (true = ascending).
func (m *Model[T]) SortKey() (string, bool) { return m.sortKey, m.sortAsc }

// Searching reports whether the search box has focus.
func (m *Model[T]) Searching() bool { return m.searching }

// SelectedRow returns the record under the row cursor on the current
// page, if any.
func (m *Model[T]) SelectedRow() (T, bool) {
	rows := m.PageRows()
	if len(rows) == 0 {
		var zero T
		return zero, false
	}
	i := m.rowCursor
	if i >= len(rows) {
		i = len(rows) - 1
	}
	return rows[i], true
}

// TotalPages returns the page count for the current filtered set, at
// least 1.
func (m *Model[T]) TotalPages() int {
	if !m.paginate {
		return 1
	}
	n := len(m.FilteredRows())
	pages := (n + m.pageSize - 1) / m.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// FilteredRows applies the search filter, then the active sort, and
// returns the result. The sort is stable in both directions; records with
// a missing value sort lowest and never match a search.
func (m *Model[T]) FilteredRows() []T {
	rows := m.data
	if m.searchable && m.search != "" {
		rows = searchRows(rows, m.cols, m.search)
	}
	if m.sortable && m.sortKey != "" {
		rows = sortRows(rows, m.cols, m.sortKey, m.sortAsc)
	}
	return rows
}

// PageRows slices the current page out of FilteredRows. With pagination
// disabled it returns the full filtered set.
func (m *Model[T]) PageRows() []T {
	rows := m.FilteredRows()
	if !m.paginate {
		return rows
	}
	start := (m.page - 1) * m.pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + m.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
