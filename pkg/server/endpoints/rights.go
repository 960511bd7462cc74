package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/artrights/pkg/server"
	"github.com/doodlesbykumbi/artrights/pkg/service"
)

// RegisterRightsEndpoints registers the rights holder routes.
func RegisterRightsEndpoints(s *server.Server) {
	rights := s.Services.Rights
	router := s.Router

	// GET /rights-holders/{id} - Holder with contact and media
	router.HandleFunc("/rights-holders/{id}", handleGet(found(rights.View), "Rights holder")).Methods("GET")

	// PUT /rights-holders/{id} - Save the holder form
	router.HandleFunc("/rights-holders/{id}", handleUpdateRightsHolder(rights)).Methods("PUT")

	// DELETE /rights-holders/{id} - Delete the holder and its media
	router.HandleFunc("/rights-holders/{id}", handleDeleteRightsHolder(rights)).Methods("DELETE")

	// PUT /rights-holders/{id}/media/{mediaId} - Add one media
	router.HandleFunc("/rights-holders/{id}/media/{mediaId}", handleAddRightsMedia(rights)).Methods("PUT")

	// DELETE /rights-holders/{id}/media/{mediaId} - Remove one media
	router.HandleFunc("/rights-holders/{id}/media/{mediaId}", handleRemoveRightsMedia(rights)).Methods("DELETE")
}

// respondWithReconcileError reports a failed reconciliation with its report.
// The message says the holder was partially saved only when a step was
// applied before the failure.
func respondWithReconcileError(w http.ResponseWriter, r *http.Request, result *service.ReconcileResult, err error) {
	if result == nil {
		respondWithServiceError(w, r, err)
		return
	}
	code, body := errorResponse(err)
	if result.Report.Applied() {
		body.Message = "rights holder partially saved: " + body.Message
	}
	body.Report = result.Report
	respondWithError(w, code, body)
}

func handleUpdateRightsHolder(rights service.RightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		var input service.ReconcileInput
		if err := decodeJSON(w, r, &input); err != nil {
			respondBadRequest(w, err)
			return
		}
		input.HolderID = id

		result, err := rights.Reconcile(r.Context(), input)
		if err != nil {
			respondWithReconcileError(w, r, result, err)
			return
		}
		if result == nil {
			respondNotFound(w, "Rights holder", id)
			return
		}
		respondWithMessage(w, http.StatusOK, "Rights holder updated", result)
	}
}

func handleDeleteRightsHolder(rights service.RightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		ok, err := rights.Delete(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !ok {
			respondNotFound(w, "Rights holder", id)
			return
		}
		respondWithMessage(w, http.StatusOK, "Rights holder deleted", nil)
	}
}

func handleAddRightsMedia(rights service.RightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		h, err := rights.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if h == nil {
			respondNotFound(w, "Rights holder", id)
			return
		}
		row, err := rights.AddMedia(r.Context(), id, pathVar(r, "mediaId"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithMessage(w, http.StatusOK, "Media added", row)
	}
}

func handleRemoveRightsMedia(rights service.RightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		mediaID := pathVar(r, "mediaId")
		ok, err := rights.RemoveMedia(r.Context(), id, mediaID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !ok {
			respondNotFound(w, "Rights media", id+"/"+mediaID)
			return
		}
		respondWithMessage(w, http.StatusOK, "Media removed", nil)
	}
}
