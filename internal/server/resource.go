package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"retaildash/internal/domain"
	"retaildash/internal/store"
)

// mountResource registers the CRUD endpoints for one collection under
// /api/{name}. All seven resources share this implementation; only the
// collection accessor differs.
func mountResource[T any](r chi.Router, st *store.Store, col store.Collection[T]) {
	base := "/" + col.Name

	r.Get(base, func(w http.ResponseWriter, _ *http.Request) {
		var out []T
		st.View(func(d *domain.Dataset) {
			out = col.List(d)
		})
		writeOK(w, out)
	})

	r.Get(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		var (
			rec   T
			found bool
		)
		st.View(func(d *domain.Dataset) {
			rec, found = col.Find(d, id)
		})
		if !found {
			writeFail[T](w, http.StatusNotFound, col.Name+" "+id+" not found")
			return
		}
		writeOK(w, rec)
	})

	r.Post(base, func(w http.ResponseWriter, req *http.Request) {
		var rec T
		if err := json.NewDecoder(req.Body).Decode(&rec); err != nil {
			writeFail[T](w, http.StatusBadRequest, "malformed request body")
			return
		}
		var stored T
		err := st.Mutate(func(d *domain.Dataset) error {
			stored = col.Insert(d, rec)
			return nil
		})
		if err != nil {
			writeFail[T](w, http.StatusInternalServerError, err.Error())
			return
		}
		writeOK(w, stored)
	})

	r.Put(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		var rec T
		if err := json.NewDecoder(req.Body).Decode(&rec); err != nil {
			writeFail[T](w, http.StatusBadRequest, "malformed request body")
			return
		}
		var (
			stored T
			found  bool
		)
		err := st.Mutate(func(d *domain.Dataset) error {
			stored, found = col.Replace(d, id, rec)
			if !found {
				return errNotFound
			}
			return nil
		})
		if err == errNotFound {
			writeFail[T](w, http.StatusNotFound, col.Name+" "+id+" not found")
			return
		}
		if err != nil {
			writeFail[T](w, http.StatusInternalServerError, err.Error())
			return
		}
		writeOK(w, stored)
	})

	r.Delete(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		err := st.Mutate(func(d *domain.Dataset) error {
			if !col.Remove(d, id) {
				return errNotFound
			}
			return nil
		})
		if err == errNotFound {
			writeFail[bool](w, http.StatusNotFound, col.Name+" "+id+" not found")
			return
		}
		if err != nil {
			writeFail[bool](w, http.StatusInternalServerError, err.Error())
			return
		}
		writeOK(w, true)
	})
}
