package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/service"
	"github.com/doodlesbykumbi/artrights/pkg/table"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// ErrorBody is the payload of every failed request.
type ErrorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Report  any               `json:"report,omitempty"`
}

// MessageResponse is the payload of every successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// requestError marks an error caused by the request itself.
type requestError struct {
	err error
}

func (e requestError) Error() string { return e.err.Error() }
func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return requestError{err: err}
}

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithMessage(w http.ResponseWriter, code int, message string, data any) {
	respondWithJSON(w, code, MessageResponse{Message: message, Data: data})
}

func respondNotFound(w http.ResponseWriter, label, id string) {
	respondWithError(w, http.StatusNotFound, ErrorBody{Message: fmt.Sprintf("%s %s not found", label, id)})
}

func respondBadRequest(w http.ResponseWriter, err error) {
	respondWithError(w, http.StatusBadRequest, ErrorBody{Message: err.Error()})
}

// respondWithServiceError maps a service error onto a status code.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code, body := errorResponse(err)
	if code >= http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	respondWithError(w, code, body)
}

func errorResponse(err error) (int, ErrorBody) {
	var (
		verr *model.ValidationError
		rerr requestError
	)
	switch {
	case errors.As(err, &rerr):
		return http.StatusBadRequest, ErrorBody{Message: err.Error()}
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, ErrorBody{Message: "validation failed", Fields: verr.Fields}
	case errors.Is(err, service.ErrInvalidReference):
		return http.StatusUnprocessableEntity, ErrorBody{Message: err.Error()}
	case errors.Is(err, service.ErrInUse):
		return http.StatusConflict, ErrorBody{Message: err.Error()}
	case errors.Is(err, table.ErrUnknownColumn), errors.Is(err, table.ErrPageSize), errors.Is(err, table.ErrOrder):
		return http.StatusBadRequest, ErrorBody{Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrorBody{Message: "request cancelled"}
	}
	return http.StatusInternalServerError, ErrorBody{Message: "internal error"}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
