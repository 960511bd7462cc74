package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	// Nested routes first; they share prefixes with the collections.
	RegisterArtworkEndpoints(srv)
	RegisterRightsEndpoints(srv)
	RegisterProjectEndpoints(srv)

	RegisterCollectionEndpoints(srv)
	RegisterStatusEndpoints(srv)
}

// RegisterCollectionEndpoints registers list, create, get, update and delete
// for every collection.
func RegisterCollectionEndpoints(srv *server.Server) {
	svc := srv.Services

	registerCollection(srv, collection[model.User, model.UserPatch]{
		path: "/users", label: "User", crud: svc.Users, filter: "name",
	})
	registerCollection(srv, collection[model.Project, model.ProjectPatch]{
		path: "/projects", label: "Project", crud: svc.Projects, filter: "title",
		list: func(r *http.Request) ([]model.Project, error) {
			if s := r.URL.Query().Get("status"); s != "" {
				status, err := model.ProjectStatusString(s)
				if err != nil {
					return nil, badRequest(err)
				}
				return svc.Projects.ByStatus(r.Context(), status)
			}
			return svc.Projects.List(r.Context())
		},
		view: found(svc.Projects.View),
	})
	registerCollection(srv, collection[model.Artwork, model.ArtworkPatch]{
		path: "/artworks", label: "Artwork", crud: svc.Artworks, filter: "title",
		list: func(r *http.Request) ([]model.Artwork, error) {
			if s := r.URL.Query().Get("status"); s != "" {
				status, err := model.ArtworkStatusString(s)
				if err != nil {
					return nil, badRequest(err)
				}
				return svc.Artworks.ByStatus(r.Context(), status)
			}
			return svc.Artworks.List(r.Context())
		},
		view: found(svc.Artworks.View),
	})
	registerCollection(srv, collection[model.Contact, model.ContactPatch]{
		path: "/contacts", label: "Contact", crud: svc.Contacts, filter: "name",
		view: found(svc.Contacts.View),
	})
	registerCollection(srv, collection[model.Media, model.MediaPatch]{
		path: "/media", label: "Media", crud: svc.Media, filter: "name",
	})
	registerCollection(srv, collection[model.Task, model.TaskPatch]{
		path: "/tasks", label: "Task", crud: svc.Tasks, filter: "description",
	})
	for _, kind := range model.CategoryKinds() {
		crud, ok := svc.Categories[kind]
		if !ok {
			continue
		}
		registerCollection(srv, collection[model.Category, model.CategoryPatch]{
			path: "/categories/" + string(kind), label: "Category", crud: crud, filter: "name",
		})
	}
}
