package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"retaildash/internal/api"
	"retaildash/internal/domain"
	"retaildash/internal/overlay"
	"retaildash/internal/store"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testServices(t *testing.T) *Services {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return NewServices(api.NewMock(st, 0))
}

func TestApp_NavSwitching(t *testing.T) {
	app := NewApp(testServices(t))

	if !strings.Contains(app.View(), "Sales") {
		t.Fatal("nav missing first page")
	}

	app.Update(keyMsg("]"))
	if app.pages[app.active].Title() != "Inventory" {
		t.Errorf("] moved to %q, want Inventory", app.pages[app.active].Title())
	}
	app.Update(keyMsg("["))
	if app.pages[app.active].Title() != "Sales" {
		t.Errorf("[ moved to %q, want Sales", app.pages[app.active].Title())
	}
	// [ from the first page wraps to the last.
	app.Update(keyMsg("["))
	if app.pages[app.active].Title() != "Reports" {
		t.Errorf("[ from first page moved to %q, want Reports", app.pages[app.active].Title())
	}

	app.Update(keyMsg("3"))
	if app.pages[app.active].Title() != "Customers" {
		t.Errorf("digit jump moved to %q, want Customers", app.pages[app.active].Title())
	}
}

func TestApp_QuitKey(t *testing.T) {
	app := NewApp(testServices(t))
	_, cmd := app.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestApp_CapturingPageKeepsGlobalKeys(t *testing.T) {
	sv := testServices(t)
	app := NewApp(sv)

	// Open the create form on the sales page; q must now type, not quit.
	app.Update(keyMsg("a"))
	if !app.pages[app.active].Capturing() {
		t.Fatal("form did not capture input")
	}
	_, cmd := app.Update(keyMsg("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("q quit while a form was capturing input")
		}
	}
	if app.pages[app.active].Title() != "Sales" {
		t.Error("capturing page lost focus")
	}
}

func TestApp_ModalSwallowsNavigation(t *testing.T) {
	sv := testServices(t)
	app := NewApp(sv)
	sv.Modal.Show("Notice", "busy")

	app.Update(keyMsg("]"))
	if app.active != 0 {
		t.Error("nav key leaked through an active modal")
	}
	if !strings.Contains(app.View(), "busy") {
		t.Error("modal not rendered over the app")
	}

	// Esc closes it and navigation works again.
	app.Update(keyMsg("esc"))
	app.Update(keyMsg("]"))
	if app.active != 1 {
		t.Error("navigation broken after modal closed")
	}
}

func TestApp_ViewFooterAndNav(t *testing.T) {
	app := NewApp(testServices(t))
	out := app.View()
	for _, want := range []string{"1 Sales", "8 Reports", "q: quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in app view", want)
		}
	}
}

// drain executes a command tree and returns every message it produces.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestApp_DebounceTimersScopedToTheirPage(t *testing.T) {
	sv := testServices(t)
	app := NewApp(sv)

	// Start a search on sales, abandon it, then search on inventory.
	app.Update(keyMsg("/"))
	app.Update(keyMsg("m"))
	app.Update(keyMsg("esc"))
	app.Update(keyMsg("]"))
	app.Update(keyMsg("/"))
	_, cmd := app.Update(keyMsg("u"))

	// Inventory's debounce timer is broadcast to every page; it must
	// commit only inventory's pending term.
	for _, msg := range drain(cmd) {
		app.Update(msg)
	}

	sales := app.pages[0].(*resourcePage[domain.Sale])
	if got := sales.tbl.Search(); got != "" {
		t.Errorf("inventory's debounce committed the sales search: %q", got)
	}
	inventory := app.pages[1].(*resourcePage[domain.Product])
	if got := inventory.tbl.Search(); got != "u" {
		t.Errorf("inventory search = %q, want %q", got, "u")
	}
}

func TestResourcePage_StaleLoadDropped(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])

	p.load()
	p.load() // supersedes the first request

	older := []domain.Sale{{ID: "old", Product: "Stale"}}
	newer := []domain.Sale{{ID: "new", Product: "Fresh"}}

	p.Update(listLoadedMsg[domain.Sale]{page: "sales", gen: 1, resp: api.OK(older)})
	if rows := p.tbl.PageRows(); len(rows) != 0 {
		t.Fatalf("stale completion applied: %v", rows)
	}
	if !sv.Loading.Visible() {
		t.Fatal("newer request's indicator cleared by the stale completion")
	}

	p.Update(listLoadedMsg[domain.Sale]{page: "sales", gen: 2, resp: api.OK(newer)})
	rows := p.tbl.PageRows()
	if len(rows) != 1 || rows[0].ID != "new" {
		t.Errorf("latest completion not applied: %v", rows)
	}
	if sv.Loading.Visible() {
		t.Error("indicator still visible after the latest completion")
	}
}

func TestResourcePage_LoadErrorBecomesToast(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])
	p.load()

	p.Update(listLoadedMsg[domain.Sale]{page: "sales", gen: 1, resp: api.Fail[[]domain.Sale]("request failed")})
	if sv.Toasts.Len() != 1 {
		t.Fatalf("toast count = %d, want 1", sv.Toasts.Len())
	}
	if sv.Toasts.Live()[0].Message != "request failed" {
		t.Errorf("toast message = %q", sv.Toasts.Live()[0].Message)
	}
}

func TestResourcePage_IgnoresOtherPagesMessages(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])
	p.load()

	p.Update(listLoadedMsg[domain.Sale]{page: "customers", gen: 1, resp: api.OK([]domain.Sale{{ID: "x"}})})
	if len(p.tbl.PageRows()) != 0 {
		t.Error("page applied a message addressed to another page")
	}
}

func TestResourcePage_SavedTriggersToastAndReload(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])
	gen := p.gen

	_, cmd := p.Update(savedMsg[domain.Sale]{page: "sales", scope: saveScope("sales"), created: true, resp: api.OK(domain.Sale{ID: "s1"})})
	if cmd == nil {
		t.Fatal("expected reload command after save")
	}
	if sv.Toasts.Len() != 1 || sv.Toasts.Live()[0].Message != "sale created" {
		t.Errorf("unexpected toasts: %+v", sv.Toasts.Live())
	}
	if p.gen != gen+1 {
		t.Error("save did not issue a reload")
	}
}

func TestResourcePage_DeleteConfirmFlow(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])
	p.tbl.UpdateData([]domain.Sale{{ID: "sale-x", Product: "Mug"}})

	_, wait := p.Update(keyMsg("d"))
	if wait == nil || !sv.Modal.Active() {
		t.Fatal("d did not open the confirmation modal")
	}
	if p.confirmID != sv.Modal.ActiveID() {
		t.Fatal("page lost track of its confirmation")
	}

	sv.Modal.Update(keyMsg("y"))
	_, cmd := p.Update(wait())
	if cmd == nil {
		t.Error("confirmed delete issued no request")
	}
	if p.deleteID != "" {
		t.Error("pending delete id not cleared")
	}
}

func TestResourcePage_DeclinedConfirmDoesNothing(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])
	p.tbl.UpdateData([]domain.Sale{{ID: "sale-x", Product: "Mug"}})

	_, wait := p.Update(keyMsg("d"))
	sv.Modal.Update(keyMsg("n"))
	_, cmd := p.Update(wait())
	if cmd != nil {
		t.Error("declined confirmation still issued a delete")
	}
}

func TestResourcePage_DeleteScopeIndependentOfSave(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])

	// A save in flight and a delete in flight hold separate scopes.
	sv.Loading.Show(saveScope("sales"))
	p.deleteCmd("sale-x") // Show runs while the command is built
	if !sv.Loading.Active(deleteScope("sales")) {
		t.Fatal("delete did not claim its own scope")
	}

	p.Update(deletedMsg{page: "sales", scope: deleteScope("sales"), resp: api.OK(true)})
	if !sv.Loading.Active(saveScope("sales")) {
		t.Error("delete completion hid the save's indicator")
	}
	if sv.Loading.Active(deleteScope("sales")) {
		t.Error("delete scope not cleared on completion")
	}
}

func TestResourcePage_StrayConfirmIgnored(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])
	p.confirmID = 7
	p.deleteID = "sale-x"

	_, cmd := p.Update(overlay.ConfirmResultMsg{ID: 99, OK: true})
	if cmd != nil {
		t.Error("confirmation for another modal triggered a delete")
	}
}

func TestResourcePage_FormOpenAndCancel(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])

	p.Update(keyMsg("a"))
	if !p.Capturing() {
		t.Fatal("form did not open")
	}
	out := p.View(100)
	if !strings.Contains(out, "New sale") || !strings.Contains(out, "Product") {
		t.Errorf("form view missing content:\n%s", out)
	}

	p.Update(keyMsg("esc"))
	if p.Capturing() {
		t.Error("esc did not close the form")
	}
}

func TestResourcePage_EditPrefillsForm(t *testing.T) {
	sv := testServices(t)
	p := newSalesPage(sv).(*resourcePage[domain.Sale])
	p.tbl.UpdateData([]domain.Sale{{ID: "sale-x", Product: "Mug", Customer: "Ana", Quantity: 2, Total: 19.80}})

	p.Update(keyMsg("e"))
	if p.editID != "sale-x" {
		t.Fatalf("editID = %q, want sale-x", p.editID)
	}
	vals := p.form.Values()
	if vals["product"] != "Mug" || vals["total"] != "19.8" {
		t.Errorf("form not prefilled: %v", vals)
	}
}

func TestReportsPage_LoadsSummary(t *testing.T) {
	sv := testServices(t)
	p := newReportsPage(sv).(*reportsPage)
	p.load()

	p.Update(summaryLoadedMsg{gen: 1, resp: api.OK(domain.Summary{
		Revenue:     129.10,
		SaleCount:   4,
		TopProducts: []domain.ProductSales{{Product: "Beans", Quantity: 3, Total: 55.50}},
	})})

	out := p.View(100)
	for _, want := range []string{"Revenue", "129.10", "Top products", "Beans"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in reports view", want)
		}
	}
}

func TestReportsPage_StaleSummaryDropped(t *testing.T) {
	sv := testServices(t)
	p := newReportsPage(sv).(*reportsPage)
	p.load()
	p.load()

	p.Update(summaryLoadedMsg{gen: 1, resp: api.OK(domain.Summary{Revenue: 1})})
	if p.loaded {
		t.Error("stale summary applied")
	}
	p.Update(summaryLoadedMsg{gen: 2, resp: api.OK(domain.Summary{Revenue: 2})})
	if !p.loaded || p.summary.Revenue != 2 {
		t.Errorf("latest summary not applied: %+v", p.summary)
	}
}
