// Package server exposes the retail dataset over REST. Every endpoint
// answers with the same envelope the facade clients decode, so the REST
// and mock paths stay indistinguishable to the UI.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"retaildash/internal/api"
	"retaildash/internal/domain"
	"retaildash/internal/store"
	"retaildash/internal/telemetry"
)

// Server is the HTTP server over the blob store.
type Server struct {
	store  *store.Store
	router *chi.Mux
	tracer oteltrace.Tracer
	http   *http.Server
}

// New creates a Server. tracing may be nil.
func New(st *store.Store, tracing *telemetry.Tracing) *Server {
	s := &Server{
		store:  st,
		router: chi.NewRouter(),
		tracer: tracing.Tracer(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler returns the root handler, used directly by tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
	s.router.Use(s.traceRequests)
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		mountResource(r, s.store, store.Products)
		mountResource(r, s.store, store.Sales)
		mountResource(r, s.store, store.Customers)
		mountResource(r, s.store, store.Suppliers)
		mountResource(r, s.store, store.Invoices)
		mountResource(r, s.store, store.Expenses)
		mountResource(r, s.store, store.Returns)

		r.Patch("/invoices/{id}/status", s.handleInvoiceStatus)
		r.Get("/reports/summary", s.handleReportSummary)
	})
}

// traceRequests opens one span per request.
func (s *Server) traceRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := s.tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))
		span.SetAttributes(attribute.Int("http.status_code", ww.Status()))
	})
}

// ListenAndServe blocks until the context is cancelled or the listener
// fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.ListenAndServe() }()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail[domain.Invoice](w, http.StatusBadRequest, "malformed request body")
		return
	}
	if !domain.ValidStatus(body.Status) {
		writeFail[domain.Invoice](w, http.StatusBadRequest, fmt.Sprintf("invalid status %q", body.Status))
		return
	}
	var stored domain.Invoice
	err := s.store.Mutate(func(d *domain.Dataset) error {
		inv, found := store.Invoices.Find(d, id)
		if !found {
			return errNotFound
		}
		inv.Status = body.Status
		stored, _ = store.Invoices.Replace(d, id, inv)
		return nil
	})
	if err == errNotFound {
		writeFail[domain.Invoice](w, http.StatusNotFound, "invoice "+id+" not found")
		return
	}
	if err != nil {
		writeFail[domain.Invoice](w, http.StatusInternalServerError, err.Error())
		return
	}
	writeOK(w, stored)
}

func (s *Server) handleReportSummary(w http.ResponseWriter, r *http.Request) {
	var summary domain.Summary
	s.store.View(func(d *domain.Dataset) {
		summary = d.Summarize()
	})
	writeOK(w, summary)
}

var errNotFound = fmt.Errorf("not found")

func writeOK[T any](w http.ResponseWriter, data T) {
	writeJSON(w, http.StatusOK, api.OK(data))
}

func writeFail[T any](w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.Fail[T](msg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
