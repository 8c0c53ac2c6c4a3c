// Package api is the data access facade: every feature module talks to it
// through one uniform asynchronous contract and gets the same result
// envelope back, whether the underlying implementation is the REST client
// or the in-memory mock. No call ever returns a Go error to UI code;
// failures ride inside the envelope.
package api

import (
	"context"

	"retaildash/internal/domain"
)

// Response is the uniform envelope for every facade call. Exactly one of
// Data and Error is meaningful, selected by Success.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps data in a success envelope.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// Fail wraps an error message in a failure envelope.
func Fail[T any](msg string) Response[T] {
	return Response[T]{Success: false, Error: msg}
}

// Resource is the CRUD surface every resource type exposes.
type Resource[T any] interface {
	List(ctx context.Context) Response[[]T]
	Get(ctx context.Context, id string) Response[T]
	Create(ctx context.Context, rec T) Response[T]
	Update(ctx context.Context, id string, rec T) Response[T]
	Delete(ctx context.Context, id string) Response[bool]
}

// InvoiceResource adds the status transition to the invoice CRUD surface.
type InvoiceResource interface {
	Resource[domain.Invoice]
	UpdateStatus(ctx context.Context, id, status string) Response[domain.Invoice]
}

// ReportResource serves the report aggregates.
type ReportResource interface {
	Summary(ctx context.Context) Response[domain.Summary]
}

// Client bundles one service per resource. Both implementations satisfy
// the full surface, report endpoints included, so callers never need to
// know which one they hold.
type Client struct {
	Products  Resource[domain.Product]
	Sales     Resource[domain.Sale]
	Customers Resource[domain.Customer]
	Suppliers Resource[domain.Supplier]
	Invoices  InvoiceResource
	Expenses  Resource[domain.Expense]
	Returns   Resource[domain.Return]
	Reports   ReportResource
}
