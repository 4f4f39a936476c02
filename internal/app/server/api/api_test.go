package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"escuela/internal/domain/debt"
	"escuela/internal/domain/materia"
	"escuela/internal/infrastructure/storage/memory"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func newTestRouter() http.Handler {
	log := slog.Default()
	return New(Deps{
		Materias: materia.NewService(memory.New[materia.Materia](), log),
		Debts:    debt.NewMockService(debt.DefaultTable(), log),
	}, log)
}

func TestNew_Routes(t *testing.T) {
	mux := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "health", method: http.MethodGet, path: "/api/v1/health", want: http.StatusOK},
		{name: "list materias", method: http.MethodGet, path: "/materias", want: http.StatusOK},
		{name: "create materia", method: http.MethodPost, path: "/materias", body: `{"nombre":"Historia"}`, want: http.StatusCreated},
		{name: "unknown materia", method: http.MethodGet, path: "/materias/nope", want: http.StatusNotFound},
		{name: "debts", method: http.MethodGet, path: "/api/debts/student/1", want: http.StatusOK},
		{name: "students disabled", method: http.MethodGet, path: "/api/students", want: http.StatusNotFound},
		{name: "openapi", method: http.MethodGet, path: "/openapi.json", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestNew_N8nPayloadShape(t *testing.T) {
	mux := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/materias", strings.NewReader(`{"id":"m1","nombre":"Historia"}`))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/materias/m1/n8n", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$schema")
	assert.Contains(t, rec.Body.String(), `"json":{"id":"m1"`)
}

func TestNew_CORS(t *testing.T) {
	mux := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/materias", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
