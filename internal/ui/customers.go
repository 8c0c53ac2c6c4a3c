package ui

import (
	"retaildash/internal/domain"
	"retaildash/internal/table"
	"retaildash/internal/validate"
)

func newCustomersPage(sv *Services) Page {
	return newResourcePage(pageConfig[domain.Customer]{
		name:  "customers",
		title: "Customers",
		svc:   sv.Client.Customers,
		columns: []table.Column[domain.Customer]{
			{Key: "name", Title: "Name", Value: func(c domain.Customer) any { return c.Name }},
			{Key: "email", Title: "Email", Value: func(c domain.Customer) any { return c.Email }},
			{Key: "phone", Title: "Phone", Value: func(c domain.Customer) any { return c.Phone }},
			{Key: "city", Title: "City", Value: func(c domain.Customer) any { return c.City }},
		},
		fields: []Field{
			{Key: "name", Label: "Name"},
			{Key: "email", Label: "Email"},
			{Key: "phone", Label: "Phone"},
			{Key: "city", Label: "City"},
		},
		rules: validate.RuleSet{
			"name":  {validate.Required("Name")},
			"email": {validate.Required("Email")},
		},
		id: func(c domain.Customer) string { return c.ID },
		toValues: func(c domain.Customer) map[string]string {
			return map[string]string{
				"name":  c.Name,
				"email": c.Email,
				"phone": c.Phone,
				"city":  c.City,
			}
		},
		fromValues: func(base domain.Customer, v map[string]string) domain.Customer {
			base.Name = v["name"]
			base.Email = v["email"]
			base.Phone = v["phone"]
			base.City = v["city"]
			return base
		},
	}, sv)
}
