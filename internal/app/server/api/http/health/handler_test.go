package health

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestHandler_healthCheck(t *testing.T) {
	fixed := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	handler := NewHandler(slog.Default(), huma.Middlewares{})
	handler.now = func() time.Time { return fixed }

	output, err := handler.healthCheck(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "OK", output.Body.Status)
	assert.Equal(t, fixed, output.Body.Timestamp)
}

func TestHandler_Route(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler(slog.Default(), nil).SetupRoutes(api)

	resp := api.Get("/api/v1/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"OK"`)
}

func TestNewHandler(t *testing.T) {
	log := slog.Default()
	middleware := huma.Middlewares{}

	handler := NewHandler(log, middleware)

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
