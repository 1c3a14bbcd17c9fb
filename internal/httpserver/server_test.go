package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"daily-report-bot/internal/lib/sl"
)

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]HealthFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthy",
			checks:     map[string]HealthFunc{"db": func(context.Context) error { return nil }},
			wantStatus: http.StatusOK,
			wantBody:   `"db":"ok"`,
		},
		{
			name:       "db down",
			checks:     map[string]HealthFunc{"db": func(context.Context) error { return errors.New("closed") }},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"db":"closed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewRouter(sl.Discard(), tt.checks).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(sl.Discard(), nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
