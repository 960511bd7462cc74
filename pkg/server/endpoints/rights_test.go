package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server"
	"github.com/doodlesbykumbi/artrights/pkg/service"
)

func newRightsServer(rights service.RightsService) *server.Server {
	srv := server.NewServer(&service.Services{Rights: rights}, &config.Config{}, nil, "127.0.0.1", "0")
	RegisterRightsEndpoints(srv)
	return srv
}

func serve(srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func TestUpdateRightsHolder(t *testing.T) {
	t.Run("passes the form through", func(t *testing.T) {
		rights := NewMockRightsService()
		want := service.ReconcileInput{HolderID: "h1", ContactID: "c1", Price: 500, MediaIDs: []string{"m2"}}
		rights.On("Reconcile", mock.Anything, want).Return(&service.ReconcileResult{
			Holder: &model.RightsHolderView{RightsHolder: model.RightsHolder{Base: model.Base{ID: "h1"}, Price: 500}},
			Report: service.ReconcileReport{Added: []string{"m2"}, Removed: []string{"m1"}},
		}, nil)

		w := serve(newRightsServer(rights), "PUT", "/rights-holders/h1",
			`{"contact_id":"c1","price":500,"media_ids":["m2"]}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Message string                  `json:"message"`
			Data    service.ReconcileResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Rights holder updated", resp.Message)
		assert.Equal(t, []string{"m1"}, resp.Data.Report.Removed)
		rights.AssertExpectations(t)
	})

	t.Run("unknown holder", func(t *testing.T) {
		rights := NewMockRightsService()
		rights.On("Reconcile", mock.Anything, mock.Anything).Return(nil, nil)

		w := serve(newRightsServer(rights), "PUT", "/rights-holders/nope", `{"contact_id":"c1"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("partial failure carries the report", func(t *testing.T) {
		rights := NewMockRightsService()
		rights.On("Reconcile", mock.Anything, mock.Anything).Return(&service.ReconcileResult{
			Report: service.ReconcileReport{
				Removed: []string{"m1"},
				Added:   []string{"m2"},
				Failed:  &service.ReconcileStep{Op: "add", MediaID: "m3", Error: "connection reset"},
			},
		}, errors.New("connection reset"))

		w := serve(newRightsServer(rights), "PUT", "/rights-holders/h1",
			`{"contact_id":"c1","media_ids":["m2","m3"]}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp struct {
			Error struct {
				Message string                  `json:"message"`
				Report  service.ReconcileReport `json:"report"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error.Message, "partially saved")
		require.NotNil(t, resp.Error.Report.Failed)
		assert.Equal(t, "m3", resp.Error.Report.Failed.MediaID)
		assert.Equal(t, []string{"m2"}, resp.Error.Report.Added)
	})

	t.Run("failure before any step keeps the plain message", func(t *testing.T) {
		rights := NewMockRightsService()
		rights.On("Reconcile", mock.Anything, mock.Anything).Return(&service.ReconcileResult{
			Report: service.ReconcileReport{
				Added:   []string{},
				Removed: []string{},
				Failed:  &service.ReconcileStep{Op: "update", Error: "connection reset"},
			},
		}, errors.New("connection reset"))

		w := serve(newRightsServer(rights), "PUT", "/rights-holders/h1", `{"contact_id":"c2","price":10}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp struct {
			Error struct {
				Message string                  `json:"message"`
				Report  service.ReconcileReport `json:"report"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotContains(t, resp.Error.Message, "partially saved")
		require.NotNil(t, resp.Error.Report.Failed)
		assert.Equal(t, "update", resp.Error.Report.Failed.Op)
	})

	t.Run("invalid reference", func(t *testing.T) {
		rights := NewMockRightsService()
		rights.On("Reconcile", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: media nope", service.ErrInvalidReference))

		w := serve(newRightsServer(rights), "PUT", "/rights-holders/h1",
			`{"contact_id":"c1","media_ids":["nope"]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "media nope")
	})

	t.Run("malformed body", func(t *testing.T) {
		rights := NewMockRightsService()

		w := serve(newRightsServer(rights), "PUT", "/rights-holders/h1", `{"price":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		rights.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
	})
}

func TestGetRightsHolder(t *testing.T) {
	rights := NewMockRightsService()
	rights.On("View", mock.Anything, "h1").Return(&model.RightsHolderView{
		RightsHolder: model.RightsHolder{Base: model.Base{ID: "h1"}, ArtworkID: "a1", Price: 10},
		MediaRights:  []model.MediaRight{},
	}, nil)
	rights.On("View", mock.Anything, "nope").Return(nil, nil)
	srv := newRightsServer(rights)

	w := serve(srv, "GET", "/rights-holders/h1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"artwork_id":"a1"`)

	w = serve(srv, "GET", "/rights-holders/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Rights holder nope not found")
}

func TestRightsMediaEndpoints(t *testing.T) {
	rights := NewMockRightsService()
	rights.On("Get", mock.Anything, "h1").Return(&model.RightsHolder{Base: model.Base{ID: "h1"}}, nil)
	rights.On("Get", mock.Anything, "nope").Return(nil, nil)
	rights.On("AddMedia", mock.Anything, "h1", "m1").Return(model.RightsMedia{RightsHolderID: "h1", MediaID: "m1"}, nil)
	rights.On("AddMedia", mock.Anything, "h1", "gone").Return(model.RightsMedia{}, fmt.Errorf("%w: media gone", service.ErrInvalidReference))
	rights.On("RemoveMedia", mock.Anything, "h1", "m1").Return(true, nil)
	rights.On("RemoveMedia", mock.Anything, "h1", "m9").Return(false, nil)
	srv := newRightsServer(rights)

	tests := []struct {
		method string
		path   string
		code   int
	}{
		{"PUT", "/rights-holders/h1/media/m1", http.StatusOK},
		{"PUT", "/rights-holders/h1/media/gone", http.StatusUnprocessableEntity},
		{"PUT", "/rights-holders/nope/media/m1", http.StatusNotFound},
		{"DELETE", "/rights-holders/h1/media/m1", http.StatusOK},
		{"DELETE", "/rights-holders/h1/media/m9", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(srv, tt.method, tt.path, "")
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestDeleteRightsHolder(t *testing.T) {
	rights := NewMockRightsService()
	rights.On("Delete", mock.Anything, "h1").Return(true, nil)
	rights.On("Delete", mock.Anything, "nope").Return(false, nil)
	srv := newRightsServer(rights)

	w := serve(srv, "DELETE", "/rights-holders/h1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rights holder deleted")

	w = serve(srv, "DELETE", "/rights-holders/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
