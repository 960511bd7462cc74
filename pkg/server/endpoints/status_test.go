package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/artrights/pkg/config"
)

func TestHandleRoot(t *testing.T) {
	t.Run("returns JSON version by default", func(t *testing.T) {
		handler := handleRoot()

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, w.Body.String(), `"version"`)
	})

	t.Run("returns text when asked for it", func(t *testing.T) {
		handler := handleRoot()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept", "text/plain")
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "artrights ")
	})
}

func TestHandleStatus(t *testing.T) {
	cfg := &config.Config{StorageBackend: config.BackendMemory}

	t.Run("healthy", func(t *testing.T) {
		health := &MockHealthStore{}
		health.On("CheckConnectivity").Return(nil)

		w := httptest.NewRecorder()
		handleStatus(health, cfg)(w, httptest.NewRequest("GET", "/status", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "memory", resp.StorageBackend)
		health.AssertExpectations(t)
	})

	t.Run("storage unreachable", func(t *testing.T) {
		health := &MockHealthStore{}
		health.On("CheckConnectivity").Return(errors.New("dial tcp: connection refused"))

		w := httptest.NewRecorder()
		handleStatus(health, cfg)(w, httptest.NewRequest("GET", "/status", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
