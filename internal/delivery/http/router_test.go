package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"capgeticket/internal/delivery/http/controllers"
	"capgeticket/internal/delivery/http/helpers"
	"capgeticket/internal/domain"
	"capgeticket/internal/metrics"
	"capgeticket/internal/repository/memory"
	"capgeticket/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := services.NewEventService(memory.NewEventRepository(), logger, time.Second)
	translator := helpers.NewErrorTranslator(logger)
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg, reg)
	router := NewRouter(controllers.NewEventController(logger, svc), translator, m)
	srv := httptest.NewServer(NewHandler(router, logger, translator, m, []string{"http://localhost:3000"}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

const concertBody = `{"nombre":"Concierto de Rock","descripcion":"Gira","fechaEvento":"2024-12-01",` +
	`"precioMinimo":10,"precioMaximo":50,"localidad":"Madrid","nombreDelRecinto":"WiZink","genero":"Música"}`

func TestRouter_Lifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/evento", concertBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.Event](t, resp)
	require.NotZero(t, created.ID)
	assert.True(t, created.Visible)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp = do(t, srv, http.MethodGet, "/evento/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Concierto de Rock", decode[domain.Event](t, resp).Name)

	resp = do(t, srv, http.MethodGet, "/evento/nombre?name=concierto", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]domain.Event](t, resp), 1)

	resp = do(t, srv, http.MethodGet, "/evento/city?city=madrid%20", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	edited := strings.Replace(concertBody, `{`, `{"id":1,`, 1)
	edited = strings.Replace(edited, "Concierto de Rock", "Concierto Editado", 1)
	resp = do(t, srv, http.MethodPut, "/evento", edited)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Concierto Editado", decode[domain.Event](t, resp).Name)

	resp = do(t, srv, http.MethodDelete, "/evento/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[bool](t, resp))

	resp = do(t, srv, http.MethodGet, "/evento/1", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	envelope := decode[helpers.ErrorResponse](t, resp)
	assert.Equal(t, "Epic Fail: No existe el evento con ID 1", envelope.Message)
	assert.Equal(t, helpers.LabelNotFound, envelope.Error)
	assert.Equal(t, "uri=/evento/1", envelope.Path)
	_, err := time.Parse(helpers.TimestampLayout, envelope.Timestamp)
	assert.NoError(t, err)

	resp = do(t, srv, http.MethodGet, "/evento", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]domain.Event](t, resp))

	resp = do(t, srv, http.MethodDelete, "/evento/1", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, srv, http.MethodPut, "/evento", edited)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.MsgEventNotFound, decode[helpers.ErrorResponse](t, resp).Message)
}

func TestRouter_FrameworkErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		contentType string
		wantStatus  int
		wantLabel   string
		wantMsg     string
		wantAllow   string
	}{
		{
			name:       "method not allowed on id route",
			method:     http.MethodPost,
			path:       "/evento/1",
			wantStatus: http.StatusMethodNotAllowed,
			wantLabel:  helpers.LabelMethodNotAllowed,
			wantMsg:    "El método HTTP 'POST' no está permitido para esta ruta. Métodos soportados: GET DELETE",
			wantAllow:  "GET, DELETE",
		},
		{
			name:       "method not allowed on collection",
			method:     http.MethodPatch,
			path:       "/evento",
			wantStatus: http.StatusMethodNotAllowed,
			wantLabel:  helpers.LabelMethodNotAllowed,
			wantMsg:    "Métodos soportados: GET POST PUT",
			wantAllow:  "GET, POST, PUT",
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/nada",
			wantStatus: http.StatusNotFound,
			wantLabel:  helpers.LabelRouteNotFound,
		},
		{
			name:        "unsupported media type",
			method:      http.MethodPost,
			path:        "/evento",
			body:        concertBody,
			contentType: "text/plain",
			wantStatus:  http.StatusUnsupportedMediaType,
			wantLabel:   helpers.LabelUnsupportedMedia,
		},
		{
			name:       "non numeric id",
			method:     http.MethodGet,
			path:       "/evento/abc",
			wantStatus: http.StatusBadRequest,
			wantLabel:  helpers.LabelBadRequest,
		},
		{
			name:       "blank genre",
			method:     http.MethodGet,
			path:       "/evento/genero?genre=",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "El género no puede ser nulo o vacío",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rd io.Reader
			if tt.body != "" {
				rd = strings.NewReader(tt.body)
			}
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, rd)
			require.NoError(t, err)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			envelope := decode[helpers.ErrorResponse](t, resp)
			assert.Equal(t, tt.wantStatus, envelope.Status)
			if tt.wantLabel != "" {
				assert.Equal(t, tt.wantLabel, envelope.Error)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, envelope.Message, tt.wantMsg)
			}
			if tt.wantAllow != "" {
				assert.Equal(t, tt.wantAllow, resp.Header.Get("Allow"))
			}
		})
	}
}

func TestRouter_OperationalRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "UP", decode[map[string]string](t, resp)["status"])

	do(t, srv, http.MethodGet, "/evento", "")
	resp = do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",path="/evento",status_code="200"} 1`)
}
