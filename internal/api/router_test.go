package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(Dependencies{
		Resolver: progression.NewResolver(catalogue.MustDefault(), progression.FixedSelector(0)),
		Version:  "test",
	})

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{method: "GET", path: "/health", status: http.StatusOK},
		{method: "GET", path: "/api/metrics", status: http.StatusOK},
		{method: "GET", path: "/api/v1/moods", status: http.StatusOK},
		{method: "GET", path: "/api/v1/moods/calmo", status: http.StatusOK},
		{method: "GET", path: "/api/v1/keys", status: http.StatusOK},
		{method: "GET", path: "/api/v1/fields/D", status: http.StatusOK},
		{method: "POST", path: "/api/v1/progressions", body: `{"key":"G","mood":"epico"}`, status: http.StatusOK},
		{method: "POST", path: "/api/v1/progressions/render", body: `{"key":"G","mood":"calmo"}`, status: http.StatusOK},
		{method: "GET", path: "/api/v1/history", status: http.StatusServiceUnavailable},
		{method: "GET", path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}
