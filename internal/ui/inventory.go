package ui

import (
	"retaildash/internal/domain"
	"retaildash/internal/table"
	"retaildash/internal/validate"
)

func newInventoryPage(sv *Services) Page {
	return newResourcePage(pageConfig[domain.Product]{
		name:  "products",
		title: "Inventory",
		svc:   sv.Client.Products,
		columns: []table.Column[domain.Product]{
			{Key: "name", Title: "Name", Value: func(p domain.Product) any { return p.Name }},
			{Key: "sku", Title: "SKU", Value: func(p domain.Product) any { return p.SKU }},
			{Key: "category", Title: "Category", Value: func(p domain.Product) any { return p.Category }},
			{Key: "price", Title: "Price", Value: func(p domain.Product) any { return p.Price },
				Render: func(p domain.Product) string { return money(p.Price) }},
			{Key: "stock", Title: "Stock", Value: func(p domain.Product) any { return p.Stock },
				Render: func(p domain.Product) string {
					if p.Stock < 5 {
						return Styles.FieldError.Render(formatFloat(float64(p.Stock)) + " low")
					}
					return formatFloat(float64(p.Stock))
				}},
			{Key: "supplier", Title: "Supplier", Value: func(p domain.Product) any { return p.Supplier }},
		},
		fields: []Field{
			{Key: "name", Label: "Name"},
			{Key: "sku", Label: "SKU"},
			{Key: "category", Label: "Category"},
			{Key: "price", Label: "Price"},
			{Key: "stock", Label: "Stock"},
			{Key: "supplier", Label: "Supplier"},
		},
		rules: validate.RuleSet{
			"name":  {validate.Required("Name")},
			"sku":   {validate.Required("SKU")},
			"price": {validate.Required("Price"), validate.Number("Price"), validate.Min("Price", 0)},
			"stock": {validate.Required("Stock"), validate.Number("Stock"), validate.Min("Stock", 0)},
		},
		id: func(p domain.Product) string { return p.ID },
		toValues: func(p domain.Product) map[string]string {
			return map[string]string{
				"name":     p.Name,
				"sku":      p.SKU,
				"category": p.Category,
				"price":    formatFloat(p.Price),
				"stock":    formatFloat(float64(p.Stock)),
				"supplier": p.Supplier,
			}
		},
		fromValues: func(base domain.Product, v map[string]string) domain.Product {
			base.Name = v["name"]
			base.SKU = v["sku"]
			base.Category = v["category"]
			base.Price = parseFloat(v["price"])
			base.Stock = parseInt(v["stock"])
			base.Supplier = v["supplier"]
			return base
		},
	}, sv)
}
