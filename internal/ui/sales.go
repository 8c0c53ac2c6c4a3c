package ui

import (
	"retaildash/internal/domain"
	"retaildash/internal/table"
	"retaildash/internal/validate"
)

func newSalesPage(sv *Services) Page {
	return newResourcePage(pageConfig[domain.Sale]{
		name:  "sales",
		title: "Sales",
		svc:   sv.Client.Sales,
		columns: []table.Column[domain.Sale]{
			{Key: "product", Title: "Product", Value: func(s domain.Sale) any { return s.Product }},
			{Key: "customer", Title: "Customer", Value: func(s domain.Sale) any { return s.Customer }},
			{Key: "quantity", Title: "Qty", Value: func(s domain.Sale) any { return s.Quantity }},
			{Key: "total", Title: "Total", Value: func(s domain.Sale) any { return s.Total },
				Render: func(s domain.Sale) string { return money(s.Total) }},
			{Key: "date", Title: "Date", Value: func(s domain.Sale) any { return s.Date }},
		},
		fields: []Field{
			{Key: "product", Label: "Product"},
			{Key: "customer", Label: "Customer"},
			{Key: "quantity", Label: "Quantity"},
			{Key: "total", Label: "Total"},
			{Key: "date", Label: "Date (yyyy-mm-dd)"},
		},
		rules: validate.RuleSet{
			"product":  {validate.Required("Product")},
			"customer": {validate.Required("Customer")},
			"quantity": {validate.Required("Quantity"), validate.Number("Quantity"), validate.Min("Quantity", 1)},
			"total":    {validate.Required("Total"), validate.Number("Total"), validate.Min("Total", 0)},
		},
		id: func(s domain.Sale) string { return s.ID },
		toValues: func(s domain.Sale) map[string]string {
			return map[string]string{
				"product":  s.Product,
				"customer": s.Customer,
				"quantity": formatFloat(float64(s.Quantity)),
				"total":    formatFloat(s.Total),
				"date":     formatDate(s.Date),
			}
		},
		fromValues: func(base domain.Sale, v map[string]string) domain.Sale {
			base.Product = v["product"]
			base.Customer = v["customer"]
			base.Quantity = parseInt(v["quantity"])
			base.Total = parseFloat(v["total"])
			base.Date = parseDate(v["date"], base.Date)
			return base
		},
	}, sv)
}
