package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"retaildash/internal/api"
	"retaildash/internal/overlay"
	"retaildash/internal/table"
	"retaildash/internal/validate"
)

// pageConfig wires one resource into the generic page: columns for the
// table, fields and rules for the form, and the value mapping between the
// record type and form strings. Feature modules are just configs.
type pageConfig[T any] struct {
	name       string // resource name, used in scope keys and messages
	title      string
	svc        api.Resource[T]
	columns    []table.Column[T]
	fields     []Field
	rules      validate.RuleSet
	id         func(T) string
	toValues   func(T) map[string]string
	fromValues func(T, map[string]string) T
	// extraKeys handles page-specific actions before the table sees the
	// key. Optional.
	extraKeys func(p *resourcePage[T], key string) tea.Cmd
	pageSize  int
}

// resourcePage is the generic CRUD page: a data table over the resource
// plus a create/edit form and a delete confirmation.
type resourcePage[T any] struct {
	cfg pageConfig[T]
	sv  *Services

	tbl  *table.Model[T]
	form *Form
	// editID is the record being edited, "" while creating.
	editID string

	// gen is the load request token (stale completions are dropped);
	// confirmID/deleteID track the pending delete confirmation.
	gen       int
	confirmID int
	deleteID  string
}

func newResourcePage[T any](cfg pageConfig[T], sv *Services) *resourcePage[T] {
	opts := []table.Option[T]{}
	if cfg.pageSize > 0 {
		opts = append(opts, table.WithPageSize[T](cfg.pageSize))
	}
	return &resourcePage[T]{
		cfg: cfg,
		sv:  sv,
		tbl: table.New(cfg.columns, opts...),
	}
}

// Title implements Page.
func (p *resourcePage[T]) Title() string { return p.cfg.title }

// Capturing implements Page.
func (p *resourcePage[T]) Capturing() bool {
	return p.form != nil || p.tbl.Searching()
}

// Init implements Page.
func (p *resourcePage[T]) Init() tea.Cmd {
	return p.load()
}

// load issues a list request stamped with a fresh generation token. The
// loading scope pairs the token in, so a stale request's Hide cannot
// clear a newer request's indicator.
func (p *resourcePage[T]) load() tea.Cmd {
	p.gen++
	gen := p.gen
	svc := p.cfg.svc
	name := p.cfg.name
	return tea.Batch(
		p.sv.Loading.Show(loadScope(name, gen)),
		func() tea.Msg {
			return listLoadedMsg[T]{page: name, gen: gen, resp: svc.List(context.Background())}
		},
	)
}

// Update implements Page.
func (p *resourcePage[T]) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg[T]:
		if msg.page != p.cfg.name {
			return p, nil
		}
		p.sv.Loading.Hide(loadScope(p.cfg.name, msg.gen))
		if msg.gen != p.gen {
			// Stale completion from an older request; a newer load
			// owns the table now.
			return p, nil
		}
		if !msg.resp.Success {
			return p, p.sv.Toasts.Error(msg.resp.Error)
		}
		p.tbl.UpdateData(msg.resp.Data)
		return p, nil

	case savedMsg[T]:
		if msg.page != p.cfg.name {
			return p, nil
		}
		p.sv.Loading.Hide(msg.scope)
		if !msg.resp.Success {
			return p, p.sv.Toasts.Error(msg.resp.Error)
		}
		verb := "updated"
		if msg.created {
			verb = "created"
		}
		return p, tea.Batch(
			p.sv.Toasts.Success(fmt.Sprintf("%s %s", strings.TrimSuffix(p.cfg.name, "s"), verb)),
			p.load(),
		)

	case deletedMsg:
		if msg.page != p.cfg.name {
			return p, nil
		}
		p.sv.Loading.Hide(msg.scope)
		if !msg.resp.Success {
			return p, p.sv.Toasts.Error(msg.resp.Error)
		}
		return p, tea.Batch(
			p.sv.Toasts.Success(strings.TrimSuffix(p.cfg.name, "s")+" deleted"),
			p.load(),
		)

	case overlay.ConfirmResultMsg:
		if msg.ID != p.confirmID {
			return p, nil
		}
		p.confirmID = 0
		id := p.deleteID
		p.deleteID = ""
		if !msg.OK || id == "" {
			return p, nil
		}
		return p, p.deleteCmd(id)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Everything else (debounce timers and the like) belongs to the
	// table.
	var cmd tea.Cmd
	p.tbl, cmd = p.tbl.Update(msg)
	return p, cmd
}

func (p *resourcePage[T]) handleKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	if p.form != nil {
		action, cmd := p.form.Update(msg)
		switch action {
		case formCancel:
			p.form = nil
			return p, nil
		case formSubmit:
			values := p.form.Values()
			p.form = nil
			return p, p.saveCmd(values)
		}
		return p, cmd
	}

	if !p.tbl.Searching() {
		switch msg.String() {
		case "a":
			p.editID = ""
			p.form = NewForm("New "+strings.TrimSuffix(p.cfg.name, "s"), p.cfg.fields, p.cfg.rules)
			return p, nil
		case "e":
			rec, ok := p.tbl.SelectedRow()
			if !ok {
				return p, nil
			}
			p.editID = p.cfg.id(rec)
			p.form = NewForm("Edit "+strings.TrimSuffix(p.cfg.name, "s"), p.cfg.fields, p.cfg.rules)
			p.form.SetValues(p.cfg.toValues(rec))
			return p, nil
		case "d":
			rec, ok := p.tbl.SelectedRow()
			if !ok {
				return p, nil
			}
			p.deleteID = p.cfg.id(rec)
			cmd := p.sv.Modal.Confirm(
				fmt.Sprintf("Delete %s %s?", strings.TrimSuffix(p.cfg.name, "s"), p.deleteID),
				"Confirm delete",
			)
			p.confirmID = p.sv.Modal.ActiveID()
			return p, cmd
		case "r":
			return p, p.load()
		}
		if p.cfg.extraKeys != nil {
			if cmd := p.cfg.extraKeys(p, msg.String()); cmd != nil {
				return p, cmd
			}
		}
	}

	var cmd tea.Cmd
	p.tbl, cmd = p.tbl.Update(msg)
	return p, cmd
}

// saveCmd builds the record from form values and issues the create or
// update request.
func (p *resourcePage[T]) saveCmd(values map[string]string) tea.Cmd {
	editID := p.editID
	created := editID == ""
	svc := p.cfg.svc
	name := p.cfg.name
	scope := saveScope(name)

	var base T
	if !created {
		if rec, ok := p.tbl.SelectedRow(); ok && p.cfg.id(rec) == editID {
			base = rec
		}
	}
	rec := p.cfg.fromValues(base, values)

	return tea.Batch(
		p.sv.Loading.Show(scope),
		func() tea.Msg {
			var resp api.Response[T]
			if created {
				resp = svc.Create(context.Background(), rec)
			} else {
				resp = svc.Update(context.Background(), editID, rec)
			}
			return savedMsg[T]{page: name, scope: scope, created: created, resp: resp}
		},
	)
}

func (p *resourcePage[T]) deleteCmd(id string) tea.Cmd {
	svc := p.cfg.svc
	name := p.cfg.name
	// Not the save scope: a delete finishing must not hide the indicator
	// of a save still in flight.
	scope := deleteScope(name)
	return tea.Batch(
		p.sv.Loading.Show(scope),
		func() tea.Msg {
			return deletedMsg{page: name, scope: scope, resp: svc.Delete(context.Background(), id)}
		},
	)
}

// View implements Page.
func (p *resourcePage[T]) View(width int) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(p.cfg.title) + "\n\n")
	if p.form != nil {
		b.WriteString(p.form.View())
		return b.String()
	}
	p.tbl.SetWidth(width)
	b.WriteString(p.tbl.View() + "\n")
	b.WriteString(Styles.Hint.Render(p.hints()))
	return b.String()
}

func (p *resourcePage[T]) hints() string {
	h := "a: add  e: edit  d: delete  r: reload  /: search  s: sort"
	if p.cfg.extraKeys != nil {
		if extra := extraHints(p.cfg.name); extra != "" {
			h += "  " + extra
		}
	}
	return h
}

func loadScope(name string, gen int) string {
	return fmt.Sprintf("%s#%d", name, gen)
}

func saveScope(name string) string {
	return name + ":save"
}

func deleteScope(name string) string {
	return name + ":delete"
}
