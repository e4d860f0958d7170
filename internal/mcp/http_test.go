package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func newRouter(t *testing.T, token string) http.Handler {
	t.Helper()
	reg := registry.New(registry.DefaultConfig(), quietLogger())
	server := NewServer(reg, Options{Logger: quietLogger()})
	require.NoError(t, server.RegisterTools(t.Context()))
	return server.Router(HTTPOptions{Token: token})
}

func TestHealth(t *testing.T) {
	router := newRouter(t, "secret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 3, body["tools"])
}

func TestMCPEndpointRequiresToken(t *testing.T) {
	router := newRouter(t, "secret")
	initialize := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`

	tests := []struct {
		name   string
		header string
		denied bool
	}{
		{"missing", "", true},
		{"wrong scheme", "Basic secret", true},
		{"wrong token", "Bearer nope", true},
		{"valid", "Bearer secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(initialize))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json, text/event-stream")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if tt.denied {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), "unauthorized")
			} else {
				assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
			}
		})
	}
}

func TestMCPEndpointWithoutToken(t *testing.T) {
	router := newRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
