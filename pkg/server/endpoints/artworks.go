package endpoints

import (
	"errors"
	"net/http"
	"strings"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server"
	"github.com/doodlesbykumbi/artrights/pkg/service"
	"github.com/doodlesbykumbi/artrights/pkg/storage"
)

// maxImageBytes bounds artwork image uploads.
const maxImageBytes = 10 << 20

// RegisterArtworkEndpoints registers the routes nested under one artwork.
func RegisterArtworkEndpoints(s *server.Server) {
	svc := s.Services
	router := s.Router

	// GET /artworks/{id}/rights-holders - Rights holders with contact and media
	router.HandleFunc("/artworks/{id}/rights-holders", handleListArtworkRights(svc.Artworks, svc.Rights)).Methods("GET")

	// POST /artworks/{id}/rights-holders - Create a rights holder from the form
	router.HandleFunc("/artworks/{id}/rights-holders", handleCreateRightsHolder(svc.Artworks, svc.Rights)).Methods("POST")

	// GET /artworks/{id}/rights-summary - Total cost and count
	router.HandleFunc("/artworks/{id}/rights-summary", handleRightsSummary(svc.Artworks, svc.Rights)).Methods("GET")

	// GET /artworks/{id}/history - Field changes, newest first
	router.HandleFunc("/artworks/{id}/history", handleArtworkHistory(svc.Artworks, svc.History)).Methods("GET")

	// GET /artworks/{id}/tasks - Follow-up tasks
	router.HandleFunc("/artworks/{id}/tasks", handleArtworkTasks(svc.Artworks, svc.Tasks)).Methods("GET")

	// PUT /artworks/{id}/image - Upload the artwork image
	router.HandleFunc("/artworks/{id}/image", handleUploadImage(svc.Artworks, s.Images)).Methods("PUT")
}

// artworkFrom loads the artwork named in the path, responding 404 when it
// does not exist.
func artworkFrom(w http.ResponseWriter, r *http.Request, artworks service.ArtworkService) (*model.Artwork, bool) {
	id := pathVar(r, "id")
	a, err := artworks.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return nil, false
	}
	if a == nil {
		respondNotFound(w, "Artwork", id)
		return nil, false
	}
	return a, true
}

func handleListArtworkRights(artworks service.ArtworkService, rights service.RightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := artworkFrom(w, r, artworks)
		if !ok {
			return
		}
		views, err := rights.ByArtwork(r.Context(), a.ID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, views)
	}
}

func handleCreateRightsHolder(artworks service.ArtworkService, rights service.RightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := artworkFrom(w, r, artworks)
		if !ok {
			return
		}
		var input service.ReconcileInput
		if err := decodeJSON(w, r, &input); err != nil {
			respondBadRequest(w, err)
			return
		}
		input.HolderID = ""
		input.ArtworkID = a.ID

		result, err := rights.Reconcile(r.Context(), input)
		if err != nil {
			respondWithReconcileError(w, r, result, err)
			return
		}
		respondWithMessage(w, http.StatusCreated, "Rights holder created", result)
	}
}

func handleRightsSummary(artworks service.ArtworkService, rights service.RightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := artworkFrom(w, r, artworks)
		if !ok {
			return
		}
		totals, err := rights.Totals(r.Context(), a.ID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, totals)
	}
}

func handleArtworkHistory(artworks service.ArtworkService, history service.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := artworkFrom(w, r, artworks)
		if !ok {
			return
		}
		rows, err := history.ByArtwork(r.Context(), a.ID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if rows == nil {
			rows = []model.ArtworkHistory{}
		}
		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleArtworkTasks(artworks service.ArtworkService, tasks service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := artworkFrom(w, r, artworks)
		if !ok {
			return
		}
		rows, err := tasks.ByArtwork(r.Context(), a.ID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if rows == nil {
			rows = []model.Task{}
		}
		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleUploadImage(artworks service.ArtworkService, images storage.ImageStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if images == nil {
			respondWithError(w, http.StatusServiceUnavailable, ErrorBody{Message: "image storage is not configured"})
			return
		}
		a, ok := artworkFrom(w, r, artworks)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
		file, header, err := r.FormFile("image")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondWithError(w, http.StatusRequestEntityTooLarge, ErrorBody{Message: "image is too large"})
				return
			}
			respondBadRequest(w, err)
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			respondWithError(w, http.StatusUnsupportedMediaType, ErrorBody{Message: "upload must be an image"})
			return
		}

		url, err := images.Put(r.Context(), storage.ImageKey(a.ID, header.Filename), file, header.Size, contentType)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		updated, err := artworks.Update(r.Context(), a.ID, model.ArtworkPatch{ImageURL: &url})
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if updated == nil {
			respondNotFound(w, "Artwork", a.ID)
			return
		}
		respondWithMessage(w, http.StatusOK, "Image uploaded", updated)
	}
}
