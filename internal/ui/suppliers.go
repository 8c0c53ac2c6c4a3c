package ui

import (
	"retaildash/internal/domain"
	"retaildash/internal/table"
	"retaildash/internal/validate"
)

func newSuppliersPage(sv *Services) Page {
	return newResourcePage(pageConfig[domain.Supplier]{
		name:  "suppliers",
		title: "Suppliers",
		svc:   sv.Client.Suppliers,
		columns: []table.Column[domain.Supplier]{
			{Key: "name", Title: "Name", Value: func(s domain.Supplier) any { return s.Name }},
			{Key: "contact", Title: "Contact", Value: func(s domain.Supplier) any { return s.Contact }},
			{Key: "phone", Title: "Phone", Value: func(s domain.Supplier) any { return s.Phone }},
			{Key: "city", Title: "City", Value: func(s domain.Supplier) any { return s.City }},
		},
		fields: []Field{
			{Key: "name", Label: "Name"},
			{Key: "contact", Label: "Contact"},
			{Key: "phone", Label: "Phone"},
			{Key: "city", Label: "City"},
		},
		rules: validate.RuleSet{
			"name": {validate.Required("Name")},
		},
		id: func(s domain.Supplier) string { return s.ID },
		toValues: func(s domain.Supplier) map[string]string {
			return map[string]string{
				"name":    s.Name,
				"contact": s.Contact,
				"phone":   s.Phone,
				"city":    s.City,
			}
		},
		fromValues: func(base domain.Supplier, v map[string]string) domain.Supplier {
			base.Name = v["name"]
			base.Contact = v["contact"]
			base.Phone = v["phone"]
			base.City = v["city"]
			return base
		},
	}, sv)
}
