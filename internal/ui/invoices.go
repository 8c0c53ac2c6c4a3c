package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"retaildash/internal/domain"
	"retaildash/internal/table"
	"retaildash/internal/validate"
)

func newInvoicesPage(sv *Services) Page {
	svc := sv.Client.Invoices
	return newResourcePage(pageConfig[domain.Invoice]{
		name:  "invoices",
		title: "Invoices",
		svc:   svc,
		columns: []table.Column[domain.Invoice]{
			{Key: "customer", Title: "Customer", Value: func(i domain.Invoice) any { return i.Customer }},
			{Key: "amount", Title: "Amount", Value: func(i domain.Invoice) any { return i.Amount },
				Render: func(i domain.Invoice) string { return money(i.Amount) }},
			{Key: "status", Title: "Status", Value: func(i domain.Invoice) any { return i.Status }},
			{Key: "due", Title: "Due", Value: func(i domain.Invoice) any { return i.Due }},
		},
		fields: []Field{
			{Key: "customer", Label: "Customer"},
			{Key: "amount", Label: "Amount"},
			{Key: "status", Label: "Status (pending/paid/cancelled)"},
			{Key: "due", Label: "Due (yyyy-mm-dd)"},
		},
		rules: validate.RuleSet{
			"customer": {validate.Required("Customer")},
			"amount":   {validate.Required("Amount"), validate.Number("Amount"), validate.Min("Amount", 0)},
			"status":   {validate.Required("Status"), validate.OneOf("Status", domain.StatusPending, domain.StatusPaid, domain.StatusCancelled)},
		},
		id: func(i domain.Invoice) string { return i.ID },
		toValues: func(i domain.Invoice) map[string]string {
			return map[string]string{
				"customer": i.Customer,
				"amount":   formatFloat(i.Amount),
				"status":   i.Status,
				"due":      formatDate(i.Due),
			}
		},
		fromValues: func(base domain.Invoice, v map[string]string) domain.Invoice {
			base.Customer = v["customer"]
			base.Amount = parseFloat(v["amount"])
			base.Status = v["status"]
			base.Due = parseDate(v["due"], base.Due)
			return base
		},
		extraKeys: func(p *resourcePage[domain.Invoice], key string) tea.Cmd {
			var status string
			switch key {
			case "p":
				status = domain.StatusPaid
			case "c":
				status = domain.StatusCancelled
			default:
				return nil
			}
			inv, ok := p.tbl.SelectedRow()
			if !ok {
				return nil
			}
			id := inv.ID
			scope := saveScope("invoices")
			return tea.Batch(
				sv.Loading.Show(scope),
				func() tea.Msg {
					return savedMsg[domain.Invoice]{
						page:  "invoices",
						scope: scope,
						resp:  svc.UpdateStatus(context.Background(), id, status),
					}
				},
			)
		},
	}, sv)
}

// extraHints names the page-specific keys shown in the footer.
func extraHints(name string) string {
	if name == "invoices" {
		return "p: mark paid  c: cancel"
	}
	return ""
}
