package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/server"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// StatusResponse represents the response from /status
type StatusResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	StorageBackend string `json:"storage_backend,omitempty"`
	Error          string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the status and info endpoints
func RegisterStatusEndpoints(s *server.Server) {
	// GET / - Version (no checks)
	s.Router.HandleFunc("/", handleRoot()).Methods("GET")

	// GET /status - Storage connectivity
	s.Router.HandleFunc("/status", handleStatus(s.Services.Health, s.Config)).Methods("GET")
}

func version() string {
	if v := os.Getenv("ARTRIGHTS_VERSION"); v != "" {
		return v
	}
	return "0.1.0"
}

func handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "text" || strings.Contains(accept, "text/plain") {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("artrights " + version() + "\n"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"version": version()})
	}
}

func handleStatus(healthStore store.HealthStore, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := StatusResponse{Status: "ok", Version: version()}
		if cfg != nil {
			response.StorageBackend = cfg.StorageBackend
		}

		if err := healthStore.CheckConnectivity(); err != nil {
			response.Status = "error"
			response.Error = "storage connectivity check failed"
			respondWithJSON(w, http.StatusServiceUnavailable, response)
			return
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}
