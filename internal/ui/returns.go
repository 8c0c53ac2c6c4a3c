package ui

import (
	"retaildash/internal/domain"
	"retaildash/internal/table"
	"retaildash/internal/validate"
)

func newReturnsPage(sv *Services) Page {
	return newResourcePage(pageConfig[domain.Return]{
		name:  "returns",
		title: "Returns",
		svc:   sv.Client.Returns,
		columns: []table.Column[domain.Return]{
			{Key: "sale", Title: "Sale", Value: func(r domain.Return) any { return r.Sale }},
			{Key: "reason", Title: "Reason", Value: func(r domain.Return) any { return r.Reason }},
			{Key: "refund", Title: "Refund", Value: func(r domain.Return) any { return r.Refund },
				Render: func(r domain.Return) string { return money(r.Refund) }},
			{Key: "date", Title: "Date", Value: func(r domain.Return) any { return r.Date }},
		},
		fields: []Field{
			{Key: "sale", Label: "Sale ID"},
			{Key: "reason", Label: "Reason"},
			{Key: "refund", Label: "Refund"},
			{Key: "date", Label: "Date (yyyy-mm-dd)"},
		},
		rules: validate.RuleSet{
			"sale":   {validate.Required("Sale ID")},
			"reason": {validate.Required("Reason")},
			"refund": {validate.Required("Refund"), validate.Number("Refund"), validate.Min("Refund", 0)},
		},
		id: func(r domain.Return) string { return r.ID },
		toValues: func(r domain.Return) map[string]string {
			return map[string]string{
				"sale":   r.Sale,
				"reason": r.Reason,
				"refund": formatFloat(r.Refund),
				"date":   formatDate(r.Date),
			}
		},
		fromValues: func(base domain.Return, v map[string]string) domain.Return {
			base.Sale = v["sale"]
			base.Reason = v["reason"]
			base.Refund = parseFloat(v["refund"])
			base.Date = parseDate(v["date"], base.Date)
			return base
		},
	}, sv)
}
