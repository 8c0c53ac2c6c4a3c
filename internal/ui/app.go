package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"retaildash/internal/api"
	"retaildash/internal/overlay"
)

// Services are the shared collaborators injected into every page: the
// facade client and the three overlay managers. One set per process,
// passed explicitly rather than reached for as globals.
type Services struct {
	Client  *api.Client
	Toasts  *overlay.Toasts
	Modal   *overlay.Modal
	Loading *overlay.Loading
}

// NewServices builds the shared service set over the given facade client.
func NewServices(client *api.Client) *Services {
	return &Services{
		Client:  client,
		Toasts:  overlay.NewToasts(),
		Modal:   overlay.NewModal(),
		Loading: overlay.NewLoading(),
	}
}

// App is the root model: a nav bar over the feature pages, with the
// overlay layer composited on top.
type App struct {
	sv     *Services
	pages  []Page
	active int
	width  int
	height int
}

// NewApp creates the application with all feature pages registered.
func NewApp(sv *Services) *App {
	return &App{
		sv: sv,
		pages: []Page{
			newSalesPage(sv),
			newInventoryPage(sv),
			newCustomersPage(sv),
			newSuppliersPage(sv),
			newInvoicesPage(sv),
			newExpensesPage(sv),
			newReturnsPage(sv),
			newReportsPage(sv),
		},
		width:  100,
		height: 30,
	}
}

// Ensure App can be used with tea.NewProgram.
var _ tea.Model = (*App)(nil)

// Init implements tea.Model: the first page starts loading immediately;
// the rest load on first visit.
func (a *App) Init() tea.Cmd {
	return a.pages[0].Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// The modal layer swallows all input while active.
		if a.sv.Modal.Active() {
			cmd, _ := a.sv.Modal.Update(msg)
			return a, cmd
		}
		if !a.pages[a.active].Capturing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "]":
				return a, a.switchTo((a.active + 1) % len(a.pages))
			case "[":
				return a, a.switchTo((a.active - 1 + len(a.pages)) % len(a.pages))
			case "x":
				return a, a.sv.Toasts.DismissOldest()
			}
			if n := digitKey(msg.String()); n >= 1 && n <= len(a.pages) {
				return a, a.switchTo(n - 1)
			}
		}
		// Keys go to the active page only.
		page, cmd := a.pages[a.active].Update(msg)
		a.pages[a.active] = page
		return a, cmd

	case tea.MouseMsg:
		if a.sv.Modal.Active() {
			cmd, _ := a.sv.Modal.Update(msg)
			return a, cmd
		}
	}

	// Overlay managers see every message so their timers keep running.
	if cmd := a.sv.Toasts.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := a.sv.Loading.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	// Async completions are broadcast: inactive pages may have requests
	// in flight, and each page filters by its own name and token.
	for i, page := range a.pages {
		updated, cmd := page.Update(msg)
		a.pages[i] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return a, tea.Batch(cmds...)
}

// switchTo activates a page, loading it on first visit.
func (a *App) switchTo(i int) tea.Cmd {
	if i == a.active {
		return nil
	}
	a.active = i
	return a.pages[i].Init()
}

// View implements tea.Model.
func (a *App) View() string {
	if a.sv.Modal.Active() {
		return a.sv.Modal.View(a.width, a.height)
	}

	var b strings.Builder
	b.WriteString(a.navView() + "\n\n")
	b.WriteString(a.pages[a.active].View(a.width))

	if a.sv.Loading.Visible() {
		b.WriteString("\n" + a.sv.Loading.View())
	}
	if toasts := a.sv.Toasts.View(); toasts != "" {
		b.WriteString("\n" + toasts)
	}
	b.WriteString("\n" + Styles.Hint.Render("[/]: switch page  1-8: jump  q: quit"))
	return b.String()
}

func (a *App) navView() string {
	var parts []string
	for i, page := range a.pages {
		label := fmt.Sprintf("%d %s", i+1, page.Title())
		if i == a.active {
			parts = append(parts, Styles.NavActive.Render(label))
		} else {
			parts = append(parts, Styles.NavIdle.Render(label))
		}
	}
	return strings.Join(parts, Styles.NavIdle.Render(" · "))
}

func digitKey(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 0
}
