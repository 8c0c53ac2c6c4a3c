package api

import (
	"context"
	"fmt"
	"time"

	"retaildash/internal/domain"
	"retaildash/internal/store"
)

// DefaultMockLatency approximates a network round trip so loading states
// are exercised even against the in-memory implementation.
const DefaultMockLatency = 150 * time.Millisecond

// NewMock creates a facade client over the in-memory store. latency <= 0
// disables the artificial delay (used by tests that assert on behavior,
// not timing).
func NewMock(st *store.Store, latency time.Duration) *Client {
	return &Client{
		Products:  mockResource[domain.Product]{st: st, col: store.Products, latency: latency},
		Sales:     mockResource[domain.Sale]{st: st, col: store.Sales, latency: latency},
		Customers: mockResource[domain.Customer]{st: st, col: store.Customers, latency: latency},
		Suppliers: mockResource[domain.Supplier]{st: st, col: store.Suppliers, latency: latency},
		Invoices:  mockInvoices{mockResource[domain.Invoice]{st: st, col: store.Invoices, latency: latency}},
		Expenses:  mockResource[domain.Expense]{st: st, col: store.Expenses, latency: latency},
		Returns:   mockResource[domain.Return]{st: st, col: store.Returns, latency: latency},
		Reports:   mockReports{st: st, latency: latency},
	}
}

// mockResource implements Resource[T] against one store collection.
type mockResource[T any] struct {
	st      *store.Store
	col     store.Collection[T]
	latency time.Duration
}

// wait simulates the network delay, honoring context cancellation.
func wait(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return nil
	}
	select {
	case <-time.After(latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r mockResource[T]) List(ctx context.Context) Response[[]T] {
	if err := wait(ctx, r.latency); err != nil {
		return Fail[[]T](err.Error())
	}
	var out []T
	r.st.View(func(d *domain.Dataset) {
		out = r.col.List(d)
	})
	return OK(out)
}

func (r mockResource[T]) Get(ctx context.Context, id string) Response[T] {
	if err := wait(ctx, r.latency); err != nil {
		return Fail[T](err.Error())
	}
	var (
		rec   T
		found bool
	)
	r.st.View(func(d *domain.Dataset) {
		rec, found = r.col.Find(d, id)
	})
	if !found {
		return Fail[T](fmt.Sprintf("%s %s not found", r.col.Name, id))
	}
	return OK(rec)
}

func (r mockResource[T]) Create(ctx context.Context, rec T) Response[T] {
	if err := wait(ctx, r.latency); err != nil {
		return Fail[T](err.Error())
	}
	var stored T
	err := r.st.Mutate(func(d *domain.Dataset) error {
		stored = r.col.Insert(d, rec)
		return nil
	})
	if err != nil {
		return Fail[T](err.Error())
	}
	return OK(stored)
}

func (r mockResource[T]) Update(ctx context.Context, id string, rec T) Response[T] {
	if err := wait(ctx, r.latency); err != nil {
		return Fail[T](err.Error())
	}
	var (
		stored T
		found  bool
	)
	err := r.st.Mutate(func(d *domain.Dataset) error {
		stored, found = r.col.Replace(d, id, rec)
		if !found {
			return fmt.Errorf("%s %s not found", r.col.Name, id)
		}
		return nil
	})
	if err != nil {
		return Fail[T](err.Error())
	}
	return OK(stored)
}

func (r mockResource[T]) Delete(ctx context.Context, id string) Response[bool] {
	if err := wait(ctx, r.latency); err != nil {
		return Fail[bool](err.Error())
	}
	err := r.st.Mutate(func(d *domain.Dataset) error {
		if !r.col.Remove(d, id) {
			return fmt.Errorf("%s %s not found", r.col.Name, id)
		}
		return nil
	})
	if err != nil {
		return Fail[bool](err.Error())
	}
	return OK(true)
}

// mockInvoices adds the status transition.
type mockInvoices struct {
	mockResource[domain.Invoice]
}

func (r mockInvoices) UpdateStatus(ctx context.Context, id, status string) Response[domain.Invoice] {
	if err := wait(ctx, r.latency); err != nil {
		return Fail[domain.Invoice](err.Error())
	}
	if !domain.ValidStatus(status) {
		return Fail[domain.Invoice](fmt.Sprintf("invalid status %q", status))
	}
	var stored domain.Invoice
	err := r.st.Mutate(func(d *domain.Dataset) error {
		inv, found := store.Invoices.Find(d, id)
		if !found {
			return fmt.Errorf("invoices %s not found", id)
		}
		inv.Status = status
		stored, _ = store.Invoices.Replace(d, id, inv)
		return nil
	})
	if err != nil {
		return Fail[domain.Invoice](err.Error())
	}
	return OK(stored)
}

// mockReports computes the aggregates directly over the dataset.
type mockReports struct {
	st      *store.Store
	latency time.Duration
}

func (r mockReports) Summary(ctx context.Context) Response[domain.Summary] {
	if err := wait(ctx, r.latency); err != nil {
		return Fail[domain.Summary](err.Error())
	}
	var s domain.Summary
	r.st.View(func(d *domain.Dataset) {
		s = d.Summarize()
	})
	return OK(s)
}
