package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"retaildash/internal/domain"
	"retaildash/internal/table"
)

// reportsPage shows the aggregate summary and a top-products table. It is
// read-only: no form, no delete, just reload.
type reportsPage struct {
	sv      *Services
	summary domain.Summary
	loaded  bool
	gen     int
	top     *table.Model[domain.ProductSales]
}

func newReportsPage(sv *Services) Page {
	cols := []table.Column[domain.ProductSales]{
		{Key: "product", Title: "Product", Value: func(p domain.ProductSales) any { return p.Product }},
		{Key: "quantity", Title: "Qty", Value: func(p domain.ProductSales) any { return p.Quantity }},
		{Key: "total", Title: "Total", Value: func(p domain.ProductSales) any { return p.Total },
			Render: func(p domain.ProductSales) string { return money(p.Total) }},
	}
	return &reportsPage{
		sv:  sv,
		top: table.New(cols, table.WithoutSearch[domain.ProductSales](), table.WithoutPagination[domain.ProductSales]()),
	}
}

// Title implements Page.
func (p *reportsPage) Title() string { return "Reports" }

// Capturing implements Page.
func (p *reportsPage) Capturing() bool { return false }

// Init implements Page.
func (p *reportsPage) Init() tea.Cmd {
	return p.load()
}

func (p *reportsPage) load() tea.Cmd {
	p.gen++
	gen := p.gen
	svc := p.sv.Client.Reports
	return tea.Batch(
		p.sv.Loading.Show(loadScope("reports", gen)),
		func() tea.Msg {
			return summaryLoadedMsg{gen: gen, resp: svc.Summary(context.Background())}
		},
	)
}

// Update implements Page.
func (p *reportsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		p.sv.Loading.Hide(loadScope("reports", msg.gen))
		if msg.gen != p.gen {
			return p, nil
		}
		if !msg.resp.Success {
			return p, p.sv.Toasts.Error(msg.resp.Error)
		}
		p.summary = msg.resp.Data
		p.loaded = true
		p.top.UpdateData(p.summary.TopProducts)
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return p, p.load()
		}
		var cmd tea.Cmd
		p.top, cmd = p.top.Update(msg)
		return p, cmd
	}
	return p, nil
}

// View implements Page.
func (p *reportsPage) View(width int) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Reports") + "\n\n")
	if !p.loaded {
		b.WriteString(Styles.Hint.Render("loading summary…"))
		return b.String()
	}

	s := p.summary
	stats := []struct {
		label string
		value string
	}{
		{"Revenue", money(s.Revenue)},
		{"Expenses", money(s.Expenses)},
		{"Refunds", money(s.Refunds)},
		{"Profit", money(s.Profit)},
		{"Sales", fmt.Sprintf("%d", s.SaleCount)},
		{"Products", fmt.Sprintf("%d", s.ProductCount)},
		{"Low stock", fmt.Sprintf("%d", s.LowStock)},
	}
	for _, st := range stats {
		b.WriteString(Styles.StatLabel.Render(pad(st.label, 10)) + Styles.Stat.Render(st.value) + "\n")
	}

	b.WriteString("\n" + Styles.Title.Render("Top products") + "\n")
	p.top.SetWidth(width)
	b.WriteString(p.top.View())
	b.WriteString("\n" + Styles.Hint.Render("r: reload"))
	return b.String()
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
