package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server"
	"github.com/doodlesbykumbi/artrights/pkg/service"
	"github.com/doodlesbykumbi/artrights/pkg/table"
)

// RegisterProjectEndpoints registers the routes nested under one project.
func RegisterProjectEndpoints(s *server.Server) {
	svc := s.Services

	// GET /projects/{id}/artworks - The project's artworks as a table
	s.Router.HandleFunc("/projects/{id}/artworks",
		handleProjectArtworks(svc.Projects, svc.Artworks, tableOptions(s.Config, "title")),
	).Methods("GET")
}

func handleProjectArtworks(projects service.ProjectService, artworks service.ArtworkService, opts table.Options) http.HandlerFunc {
	list := func(r *http.Request) ([]model.Artwork, error) {
		return artworks.ByProject(r.Context(), pathVar(r, "id"))
	}
	inner := handleList(list, opts)

	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		p, err := projects.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if p == nil {
			respondNotFound(w, "Project", id)
			return
		}
		inner(w, r)
	}
}
