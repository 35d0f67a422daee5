package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/logger"
	"github.com/windoze95/servicehub-api/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{}
	cfg.EnvVars.HistoryKey = repository.DefaultHistoryKey
	cfg.EnvVars.HistoryLimit = repository.DefaultHistoryLimit
	cfg.EnvVars.UpstreamRPS = 5
	cfg.EnvVars.ClientRPS = 100
	return SetupRouter(ctx, cfg, repository.NewMemoryStore())
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Errorf("body = %q, want pong", w.Body.String())
	}
	if w.Header().Get(logger.RequestIDHeader) == "" {
		t.Error("response is missing the request ID header")
	}
}

func TestServices_DefaultCatalog(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Services []config.ServiceEntry `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Services) != 4 {
		t.Errorf("services = %d, want 4", len(body.Services))
	}
}

func TestWeatherRecent_EmptyHistory(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/weather/recent", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"recent":[]`) {
		t.Errorf("body = %q, want an empty recent list", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "servicehub_http_requests_total") {
		t.Error("metrics output is missing the request counter")
	}
}
