package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"retaildash/internal/domain"
)

// restCore holds the shared HTTP plumbing for every REST resource.
type restCore struct {
	base string
	http *http.Client
}

// NewREST creates a facade client speaking to the retaildash server at
// baseURL (e.g. "http://localhost:8833"). httpClient may be nil.
func NewREST(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	core := &restCore{base: strings.TrimRight(baseURL, "/"), http: httpClient}
	return &Client{
		Products:  restResource[domain.Product]{core: core, path: "products"},
		Sales:     restResource[domain.Sale]{core: core, path: "sales"},
		Customers: restResource[domain.Customer]{core: core, path: "customers"},
		Suppliers: restResource[domain.Supplier]{core: core, path: "suppliers"},
		Invoices:  restInvoices{restResource[domain.Invoice]{core: core, path: "invoices"}},
		Expenses:  restResource[domain.Expense]{core: core, path: "expenses"},
		Returns:   restResource[domain.Return]{core: core, path: "returns"},
		Reports:   restReports{core: core},
	}
}

// roundTrip performs one request and decodes the server's envelope into
// out. Transport failures, bad statuses without a decodable envelope, and
// malformed payloads all come back as plain error messages; the caller
// converts them to a failure envelope.
func (c *restCore) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %v", err)
		}
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+"/api/"+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode >= 400 {
			return fmt.Errorf("server returned %s", resp.Status)
		}
		return fmt.Errorf("decode response: %v", err)
	}
	return nil
}

// restResource implements Resource[T] over the server's /api/{path}
// endpoints.
type restResource[T any] struct {
	core *restCore
	path string
}

func (r restResource[T]) List(ctx context.Context) Response[[]T] {
	var out Response[[]T]
	if err := r.core.roundTrip(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return Fail[[]T](err.Error())
	}
	return out
}

func (r restResource[T]) Get(ctx context.Context, id string) Response[T] {
	var out Response[T]
	if err := r.core.roundTrip(ctx, http.MethodGet, r.path+"/"+id, nil, &out); err != nil {
		return Fail[T](err.Error())
	}
	return out
}

func (r restResource[T]) Create(ctx context.Context, rec T) Response[T] {
	var out Response[T]
	if err := r.core.roundTrip(ctx, http.MethodPost, r.path, rec, &out); err != nil {
		return Fail[T](err.Error())
	}
	return out
}

func (r restResource[T]) Update(ctx context.Context, id string, rec T) Response[T] {
	var out Response[T]
	if err := r.core.roundTrip(ctx, http.MethodPut, r.path+"/"+id, rec, &out); err != nil {
		return Fail[T](err.Error())
	}
	return out
}

func (r restResource[T]) Delete(ctx context.Context, id string) Response[bool] {
	var out Response[bool]
	if err := r.core.roundTrip(ctx, http.MethodDelete, r.path+"/"+id, nil, &out); err != nil {
		return Fail[bool](err.Error())
	}
	return out
}

// restInvoices adds the status endpoint.
type restInvoices struct {
	restResource[domain.Invoice]
}

func (r restInvoices) UpdateStatus(ctx context.Context, id, status string) Response[domain.Invoice] {
	var out Response[domain.Invoice]
	body := map[string]string{"status": status}
	if err := r.core.roundTrip(ctx, http.MethodPatch, r.path+"/"+id+"/status", body, &out); err != nil {
		return Fail[domain.Invoice](err.Error())
	}
	return out
}

// restReports serves the aggregate endpoints.
type restReports struct {
	core *restCore
}

func (r restReports) Summary(ctx context.Context) Response[domain.Summary] {
	var out Response[domain.Summary]
	if err := r.core.roundTrip(ctx, http.MethodGet, "reports/summary", nil, &out); err != nil {
		return Fail[domain.Summary](err.Error())
	}
	return out
}
