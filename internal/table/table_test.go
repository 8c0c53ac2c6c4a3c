package table

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type item struct {
	Name  string
	Price float64
	Group string
}

func itemColumns() []Column[item] {
	return []Column[item]{
		{Key: "name", Title: "Name", Value: func(i item) any { return i.Name }},
		{Key: "price", Title: "Price", Value: func(i item) any { return i.Price }},
		{Key: "group", Title: "Group", Value: func(i item) any { return i.Group }},
	}
}

func testItems() []item {
	return []item{
		{Name: "mug", Price: 9.9, Group: "kitchen"},
		{Name: "beans", Price: 18.5, Group: "coffee"},
		{Name: "press", Price: 34, Group: "kitchen"},
		{Name: "filters", Price: 4.25, Group: "coffee"},
		{Name: "bottle", Price: 22.75, Group: "kitchen"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFilteredRows_SearchSubset(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))
	m.SetSearch("KITCHEN")

	got := m.FilteredRows()
	if len(got) != 3 {
		t.Fatalf("expected 3 kitchen records, got %d", len(got))
	}
	for _, r := range got {
		if !strings.Contains(strings.ToLower(r.Group), "kitchen") {
			t.Errorf("record %q does not match search", r.Name)
		}
	}
}

func TestFilteredRows_SearchMatchesAnyColumn(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))

	// "be" matches "beans" by name only.
	m.SetSearch("bea")
	got := m.FilteredRows()
	if len(got) != 1 || got[0].Name != "beans" {
		t.Fatalf("expected only beans, got %v", got)
	}

	// Numeric column values are searched through their string form.
	m.SetSearch("34")
	got = m.FilteredRows()
	if len(got) != 1 || got[0].Name != "press" {
		t.Fatalf("expected only press, got %v", got)
	}
}

func TestFilteredRows_NoMatch(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))
	m.SetSearch("zzz")
	if got := m.FilteredRows(); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestSort_NumericAndReverse(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))

	m.ToggleSort("price")
	asc := m.FilteredRows()
	wantAsc := []string{"filters", "mug", "beans", "bottle", "press"}
	for i, name := range wantAsc {
		if asc[i].Name != name {
			t.Fatalf("ascending[%d] = %q, want %q", i, asc[i].Name, name)
		}
	}

	// Same column again flips direction; distinct keys reverse exactly.
	m.ToggleSort("price")
	desc := m.FilteredRows()
	for i := range wantAsc {
		if desc[i].Name != wantAsc[len(wantAsc)-1-i] {
			t.Fatalf("descending[%d] = %q, want %q", i, desc[i].Name, wantAsc[len(wantAsc)-1-i])
		}
	}
}

func TestSort_Idempotent(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))
	m.ToggleSort("name")
	first := m.FilteredRows()
	second := m.FilteredRows()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated sort changed order at %d", i)
		}
	}
}

func TestSort_StableOnTies(t *testing.T) {
	rows := []item{
		{Name: "a", Group: "x"},
		{Name: "b", Group: "x"},
		{Name: "c", Group: "x"},
	}
	m := New(itemColumns(), WithData(rows))

	m.ToggleSort("group")
	asc := m.FilteredRows()
	if asc[0].Name != "a" || asc[1].Name != "b" || asc[2].Name != "c" {
		t.Errorf("ascending ties lost original order: %v", asc)
	}

	m.ToggleSort("group")
	desc := m.FilteredRows()
	if desc[0].Name != "a" || desc[1].Name != "b" || desc[2].Name != "c" {
		t.Errorf("descending ties lost original order: %v", desc)
	}
}

func TestSort_NewColumnStartsAscending(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))
	m.ToggleSort("price")
	m.ToggleSort("price") // now descending
	m.ToggleSort("name")  // new column resets to ascending
	key, asc := m.SortKey()
	if key != "name" || !asc {
		t.Errorf("expected name ascending, got %s asc=%t", key, asc)
	}
}

func TestSort_MissingValuesSortLowest(t *testing.T) {
	cols := []Column[item]{
		{Key: "name", Title: "Name", Value: func(i item) any { return i.Name }},
		{Key: "group", Title: "Group", Value: func(i item) any {
			if i.Group == "" {
				return nil
			}
			return i.Group
		}},
	}
	rows := []item{
		{Name: "with", Group: "z"},
		{Name: "without", Group: ""},
	}
	m := New(cols, WithData(rows))
	m.ToggleSort("group")
	got := m.FilteredRows()
	if got[0].Name != "without" {
		t.Errorf("nil value should sort first ascending, got %v", got)
	}
}

func TestSearch_ExcludesMissingValues(t *testing.T) {
	cols := []Column[item]{
		{Key: "group", Title: "Group", Value: func(i item) any {
			if i.Group == "" {
				return nil
			}
			return i.Group
		}},
	}
	m := New(cols, WithData([]item{{Group: ""}, {Group: "x"}}))
	m.SetSearch("x")
	if got := m.FilteredRows(); len(got) != 1 {
		t.Errorf("nil values must never match, got %d rows", len(got))
	}
}

func TestPagination_PageLengths(t *testing.T) {
	rows := make([]item, 25)
	for i := range rows {
		rows[i].Name = string(rune('a' + i))
	}
	m := New(itemColumns(), WithData(rows))

	if got := m.TotalPages(); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}
	if got := len(m.PageRows()); got != 10 {
		t.Errorf("page 1 len = %d, want 10", got)
	}
	m.SelectPage(2)
	if got := len(m.PageRows()); got != 10 {
		t.Errorf("page 2 len = %d, want 10", got)
	}
	m.SelectPage(3)
	if got := len(m.PageRows()); got != 5 {
		t.Errorf("page 3 len = %d, want 5", got)
	}

	// Out-of-range requests are no-ops.
	m.SelectPage(0)
	if m.Page() != 3 {
		t.Errorf("page 0 request moved page to %d", m.Page())
	}
	m.SelectPage(4)
	if m.Page() != 3 {
		t.Errorf("page 4 request moved page to %d", m.Page())
	}
}

func TestUpdateData_ResetsPagePreservesSortAndSearch(t *testing.T) {
	rows := make([]item, 25)
	for i := range rows {
		rows[i].Name = string(rune('a' + i))
	}
	m := New(itemColumns(), WithData(rows))
	m.ToggleSort("name")
	m.SetSearch("")
	m.SelectPage(3)

	m.UpdateData(testItems())

	if m.Page() != 1 {
		t.Errorf("page = %d after UpdateData, want 1", m.Page())
	}
	key, asc := m.SortKey()
	if key != "name" || !asc {
		t.Errorf("sort not preserved: %s asc=%t", key, asc)
	}
}

func TestScenario_TwoPagePrevNext(t *testing.T) {
	rows := testItems()[:3]
	m := New(itemColumns(), WithData(rows), WithPageSize[item](2))

	if got := len(m.PageRows()); got != 2 {
		t.Fatalf("first page len = %d, want 2", got)
	}
	// Prev at the first page is a no-op.
	m.Update(keyMsg("left"))
	if m.Page() != 1 {
		t.Errorf("prev on page 1 moved to %d", m.Page())
	}
	// Next shows the third record.
	m.Update(keyMsg("right"))
	if m.Page() != 2 {
		t.Fatalf("next did not advance, page = %d", m.Page())
	}
	if got := len(m.PageRows()); got != 1 {
		t.Errorf("second page len = %d, want 1", got)
	}
	// Next at the last page is a no-op.
	m.Update(keyMsg("right"))
	if m.Page() != 2 {
		t.Errorf("next on last page moved to %d", m.Page())
	}
}

func TestSearchDebounce_CommitsAfterQuietPeriod(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))
	m.SelectPage(1)

	m.Update(keyMsg("/"))
	if !m.Searching() {
		t.Fatal("expected search focus after /")
	}
	_, cmd := m.Update(keyMsg("m"))
	if cmd == nil {
		t.Fatal("expected debounce command after keystroke")
	}
	if m.Search() != "" {
		t.Fatalf("search committed before debounce: %q", m.Search())
	}

	// The timer for the latest generation commits the pending term.
	m.Update(debounceMsg{owner: m.id, gen: m.gen})
	if m.Search() != "m" {
		t.Errorf("search = %q after debounce, want %q", m.Search(), "m")
	}
}

func TestSearchDebounce_StaleTimerIgnored(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))
	m.Update(keyMsg("/"))
	m.Update(keyMsg("m"))
	stale := m.gen
	m.Update(keyMsg("u"))

	m.Update(debounceMsg{owner: m.id, gen: stale})
	if m.Search() != "" {
		t.Errorf("stale debounce committed search %q", m.Search())
	}
	m.Update(debounceMsg{owner: m.id, gen: m.gen})
	if m.Search() != "mu" {
		t.Errorf("search = %q, want %q", m.Search(), "mu")
	}
}

func TestSearchDebounce_OtherTablesTimerIgnored(t *testing.T) {
	a := New(itemColumns(), WithData(testItems()))
	b := New(itemColumns(), WithData(testItems()))

	// Arm a timer on a, then deliver b's equally-numbered timer to a:
	// only a's own timer may commit its pending term.
	a.Update(keyMsg("/"))
	a.Update(keyMsg("m"))
	b.Update(keyMsg("/"))
	b.Update(keyMsg("u"))

	a.Update(debounceMsg{owner: b.id, gen: a.gen})
	if a.Search() != "" {
		t.Errorf("another table's timer committed search %q", a.Search())
	}
	a.Update(debounceMsg{owner: a.id, gen: a.gen})
	if a.Search() != "m" {
		t.Errorf("search = %q, want %q", a.Search(), "m")
	}
}

func TestSearchDebounce_EscInvalidatesArmedTimer(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))
	m.Update(keyMsg("/"))
	m.Update(keyMsg("m"))
	armed := m.gen
	m.Update(keyMsg("esc"))

	m.Update(debounceMsg{owner: m.id, gen: armed})
	if m.Search() != "" {
		t.Errorf("abandoned search committed %q", m.Search())
	}
}

func TestSearch_ResetsToFirstPage(t *testing.T) {
	rows := make([]item, 25)
	for i := range rows {
		rows[i].Name = "rec"
	}
	m := New(itemColumns(), WithData(rows))
	m.SelectPage(3)
	m.SetSearch("rec")
	if m.Page() != 1 {
		t.Errorf("page = %d after search, want 1", m.Page())
	}
}

func TestSelectedRow_FollowsCursor(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()), WithPageSize[item](3))

	rec, ok := m.SelectedRow()
	if !ok || rec.Name != "mug" {
		t.Fatalf("initial selection = %v ok=%t", rec, ok)
	}
	m.Update(keyMsg("j"))
	rec, _ = m.SelectedRow()
	if rec.Name != "beans" {
		t.Errorf("after j selection = %q, want beans", rec.Name)
	}
	// Cursor clamps at the page end.
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	rec, _ = m.SelectedRow()
	if rec.Name != "press" {
		t.Errorf("cursor ran past page end: %q", rec.Name)
	}
}

func TestView_EmptyPlaceholder(t *testing.T) {
	m := New(itemColumns())
	out := m.View()
	if !strings.Contains(out, "no matching records") {
		t.Error("expected placeholder for empty result")
	}
}

func TestView_PaginationWindow(t *testing.T) {
	rows := make([]item, 100)
	m := New(itemColumns(), WithData(rows))
	m.SelectPage(5)
	out := m.View()

	for _, want := range []string{"3", "4", "[5]", "6", "7", "prev", "next"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in pager", want)
		}
	}
	if strings.Contains(out, "[8]") || strings.Contains(out, " 8 ") {
		t.Error("pager window leaked beyond current+2")
	}
}

func TestView_ShowsRecords(t *testing.T) {
	m := New(itemColumns(), WithData(testItems()))
	out := m.View()
	for _, name := range []string{"mug", "beans", "press"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %q in view", name)
		}
	}
}

func TestWithoutPagination_ReturnsAll(t *testing.T) {
	rows := make([]item, 25)
	m := New(itemColumns(), WithData(rows), WithoutPagination[item]())
	if got := len(m.PageRows()); got != 25 {
		t.Errorf("PageRows len = %d, want 25", got)
	}
	if m.TotalPages() != 1 {
		t.Errorf("TotalPages = %d, want 1", m.TotalPages())
	}
}

func TestToggleSort_SyntheticColumnIgnored(t *testing.T) {
	cols := append(itemColumns(), Column[item]{Key: "actions", Title: "Actions"})
	m := New(cols, WithData(testItems()))
	m.ToggleSort("actions")
	if key, _ := m.SortKey(); key != "" {
		t.Errorf("synthetic column became sort key %q", key)
	}
}
