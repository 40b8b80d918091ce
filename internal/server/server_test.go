package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/app"
	"github.com/ternarybob/placesbridge/internal/common"
	"github.com/ternarybob/placesbridge/internal/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := common.NewDefaultConfig()
	cfg.Storage.Badger.InMemory = true

	application, err := app.New(cfg, arbor.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	return New(application)
}

func serve(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestRoutes_ChannelLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, http.MethodPost, "/api/channel/isInitialized", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	var resp models.MethodResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp.Result)
	assert.Equal(t, w.Header().Get(requestIDHeader), resp.ID)

	w = serve(s, http.MethodPost, "/api/channel/fetchPlace", `{"placeId":"P1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(s, http.MethodPost, "/api/channel/initialize", `{"apiKey":"k"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(s, http.MethodPost, "/api/channel/isInitialized", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp.Result)

	w = serve(s, http.MethodPost, "/api/channel/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_KeysAndStatus(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, http.MethodPut, "/api/keys/google_places_api_key", `{"value":"AIzaSyExampleKey1234"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(s, http.MethodGet, "/api/keys", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AIza...1234")

	w = serve(s, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(s, http.MethodGet, "/api/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"initialized":false`)
	assert.Contains(t, w.Body.String(), `"version":"`+common.GetVersion()+`"`)
}

func TestMiddleware(t *testing.T) {
	s := newTestServer(t)

	t.Run("preflight", func(t *testing.T) {
		w := serve(s, http.MethodOptions, "/api/channel/fetchPlace", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(requestIDHeader, "abc")
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		assert.Equal(t, "abc", w.Header().Get(requestIDHeader))
	})

	t.Run("panic is recovered", func(t *testing.T) {
		h := s.withConditionalMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))
		req := httptest.NewRequest(http.MethodGet, "/api/anything", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := serve(s, http.MethodGet, "/nowhere", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
