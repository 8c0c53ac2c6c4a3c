package ui

import (
	"retaildash/internal/domain"
	"retaildash/internal/table"
	"retaildash/internal/validate"
)

func newExpensesPage(sv *Services) Page {
	return newResourcePage(pageConfig[domain.Expense]{
		name:  "expenses",
		title: "Expenses",
		svc:   sv.Client.Expenses,
		columns: []table.Column[domain.Expense]{
			{Key: "category", Title: "Category", Value: func(e domain.Expense) any { return e.Category }},
			{Key: "amount", Title: "Amount", Value: func(e domain.Expense) any { return e.Amount },
				Render: func(e domain.Expense) string { return money(e.Amount) }},
			{Key: "note", Title: "Note", Value: func(e domain.Expense) any { return e.Note }},
			{Key: "date", Title: "Date", Value: func(e domain.Expense) any { return e.Date }},
		},
		fields: []Field{
			{Key: "category", Label: "Category"},
			{Key: "amount", Label: "Amount"},
			{Key: "note", Label: "Note"},
			{Key: "date", Label: "Date (yyyy-mm-dd)"},
		},
		rules: validate.RuleSet{
			"category": {validate.Required("Category")},
			"amount":   {validate.Required("Amount"), validate.Number("Amount"), validate.Min("Amount", 0)},
		},
		id: func(e domain.Expense) string { return e.ID },
		toValues: func(e domain.Expense) map[string]string {
			return map[string]string{
				"category": e.Category,
				"amount":   formatFloat(e.Amount),
				"note":     e.Note,
				"date":     formatDate(e.Date),
			}
		},
		fromValues: func(base domain.Expense, v map[string]string) domain.Expense {
			base.Category = v["category"]
			base.Amount = parseFloat(v["amount"])
			base.Note = v["note"]
			base.Date = parseDate(v["date"], base.Date)
			return base
		},
	}, sv)
}
