package endpoints

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server"
	"github.com/doodlesbykumbi/artrights/pkg/service"
	"github.com/doodlesbykumbi/artrights/pkg/table"
)

// finder loads the representation served by GET /{id}. ok is false when
// the id is unknown.
type finder func(ctx context.Context, id string) (v any, ok bool, err error)

func found[V any](get func(context.Context, string) (*V, error)) finder {
	return func(ctx context.Context, id string) (any, bool, error) {
		v, err := get(ctx, id)
		if err != nil || v == nil {
			return nil, false, err
		}
		return v, true, nil
	}
}

// collection describes the CRUD routes of one entity.
type collection[T model.Record, P model.Patch[T]] struct {
	path   string
	label  string
	crud   service.CRUD[T]
	filter string

	// list and view replace the plain List and Get when set.
	list func(r *http.Request) ([]T, error)
	view finder
}

func registerCollection[T model.Record, P model.Patch[T]](s *server.Server, c collection[T, P]) {
	list := c.list
	if list == nil {
		list = func(r *http.Request) ([]T, error) { return c.crud.List(r.Context()) }
	}
	view := c.view
	if view == nil {
		view = found(c.crud.Get)
	}
	opts := tableOptions(s.Config, c.filter)

	s.Router.HandleFunc(c.path, handleList(list, opts)).Methods("GET")
	s.Router.HandleFunc(c.path, handleCreate(c.crud, c.label)).Methods("POST")
	s.Router.HandleFunc(c.path+"/{id}", handleGet(view, c.label)).Methods("GET")
	s.Router.HandleFunc(c.path+"/{id}", handleUpdate[T, P](c.crud, c.label)).Methods("PATCH")
	s.Router.HandleFunc(c.path+"/{id}", handleDelete(c.crud, c.label)).Methods("DELETE")
}

func tableOptions(cfg *config.Config, filter string) table.Options {
	opts := table.Options{FilterField: filter}
	if cfg != nil {
		opts.PageSize = cfg.PageSizeDefault
		opts.PageSizes = cfg.PageSizeChoices
	}
	return opts
}

// pathVar returns the decoded route variable; the router keeps paths encoded.
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func handleList[T model.Record](list func(*http.Request) ([]T, error), opts table.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := table.Parse(r.URL.Query(), opts)
		if err != nil {
			respondBadRequest(w, err)
			return
		}
		rows, err := list(r)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		page, err := table.Apply(rows, q)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, page)
	}
}

func handleGet(find finder, label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		v, ok, err := find(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !ok {
			respondNotFound(w, label, id)
			return
		}
		respondWithJSON(w, http.StatusOK, v)
	}
}

func handleCreate[T any](crud service.CRUD[T], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input T
		if err := decodeJSON(w, r, &input); err != nil {
			respondBadRequest(w, err)
			return
		}
		created, err := crud.Create(r.Context(), input)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithMessage(w, http.StatusCreated, label+" created", created)
	}
}

func handleUpdate[T any, P model.Patch[T]](crud service.CRUD[T], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		var patch P
		if err := decodeJSON(w, r, &patch); err != nil {
			respondBadRequest(w, err)
			return
		}
		updated, err := crud.Update(r.Context(), id, patch)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if updated == nil {
			respondNotFound(w, label, id)
			return
		}
		respondWithMessage(w, http.StatusOK, label+" updated", updated)
	}
}

func handleDelete[T any](crud service.CRUD[T], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		ok, err := crud.Delete(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !ok {
			respondNotFound(w, label, id)
			return
		}
		respondWithMessage(w, http.StatusOK, label+" deleted", nil)
	}
}
