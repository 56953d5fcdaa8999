package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/service"
)

func TestLogin(t *testing.T) {
	app := fiber.New()
	app.Post("/login", Login(testAuth()))

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := post(`{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tok service.Token
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	assert.NotEmpty(t, tok.AccessToken)

	for body, code := range map[string]string{
		`{"username":"admin","password":"nope"}`:  "INVALID_CREDENTIALS",
		`{"username":"root","password":"s3cret"}`: "INVALID_CREDENTIALS",
		`{"username":`: "INVALID_BODY",
	} {
		resp := post(body)
		var e errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
		assert.Equal(t, code, e.Error.Code, body)
	}
}
