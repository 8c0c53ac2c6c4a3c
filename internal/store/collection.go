package store

import (
	"github.com/google/uuid"

	"retaildash/internal/domain"
)

// Collection describes how to reach one resource slice inside the dataset.
// The mock client and the REST server share these accessors so CRUD
// behavior cannot drift between them.
type Collection[T any] struct {
	Name  string
	slice func(*domain.Dataset) *[]T
	id    func(*T) *string
}

// List returns a copy of the collection's records.
func (c Collection[T]) List(d *domain.Dataset) []T {
	src := *c.slice(d)
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Find returns the record with the given id.
func (c Collection[T]) Find(d *domain.Dataset, id string) (T, bool) {
	for _, rec := range *c.slice(d) {
		if *c.id(&rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Insert appends rec, assigning a fresh id when none is set, and returns
// the stored record.
func (c Collection[T]) Insert(d *domain.Dataset, rec T) T {
	if *c.id(&rec) == "" {
		*c.id(&rec) = uuid.New().String()
	}
	s := c.slice(d)
	*s = append(*s, rec)
	return rec
}

// Replace overwrites the record with the given id, preserving the id.
func (c Collection[T]) Replace(d *domain.Dataset, id string, rec T) (T, bool) {
	s := c.slice(d)
	for i := range *s {
		if *c.id(&(*s)[i]) == id {
			*c.id(&rec) = id
			(*s)[i] = rec
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the record with the given id.
func (c Collection[T]) Remove(d *domain.Dataset, id string) bool {
	s := c.slice(d)
	for i := range *s {
		if *c.id(&(*s)[i]) == id {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

// One Collection per resource type.
var (
	Products = Collection[domain.Product]{
		Name:  "products",
		slice: func(d *domain.Dataset) *[]domain.Product { return &d.Products },
		id:    func(p *domain.Product) *string { return &p.ID },
	}
	Sales = Collection[domain.Sale]{
		Name:  "sales",
		slice: func(d *domain.Dataset) *[]domain.Sale { return &d.Sales },
		id:    func(s *domain.Sale) *string { return &s.ID },
	}
	Customers = Collection[domain.Customer]{
		Name:  "customers",
		slice: func(d *domain.Dataset) *[]domain.Customer { return &d.Customers },
		id:    func(c *domain.Customer) *string { return &c.ID },
	}
	Suppliers = Collection[domain.Supplier]{
		Name:  "suppliers",
		slice: func(d *domain.Dataset) *[]domain.Supplier { return &d.Suppliers },
		id:    func(s *domain.Supplier) *string { return &s.ID },
	}
	Invoices = Collection[domain.Invoice]{
		Name:  "invoices",
		slice: func(d *domain.Dataset) *[]domain.Invoice { return &d.Invoices },
		id:    func(i *domain.Invoice) *string { return &i.ID },
	}
	Expenses = Collection[domain.Expense]{
		Name:  "expenses",
		slice: func(d *domain.Dataset) *[]domain.Expense { return &d.Expenses },
		id:    func(e *domain.Expense) *string { return &e.ID },
	}
	Returns = Collection[domain.Return]{
		Name:  "returns",
		slice: func(d *domain.Dataset) *[]domain.Return { return &d.Returns },
		id:    func(r *domain.Return) *string { return &r.ID },
	}
)
