package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		deps     []Pinger
		wantCode int
	}{
		{name: "database only", wantCode: http.StatusOK},
		{name: "cache answering", deps: []Pinger{stubPinger{}}, wantCode: http.StatusOK},
		{name: "database down", dbErr: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable},
		{name: "cache down", deps: []Pinger{stubPinger{err: errors.New("redis down")}}, wantCode: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()
			dbMock.ExpectPing().WillReturnError(tt.dbErr)

			app := fiber.New()
			app.Get("/health", HealthCheck(db, tt.deps...))

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			if tt.wantCode == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "healthy", body["status"])
				return
			}
			var body errorPayload
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
		})
	}
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
