package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"agencysite/internal/api"
	"agencysite/internal/auth"
	"agencysite/internal/contact"
	"agencysite/internal/core"
	"agencysite/internal/flood"
	"agencysite/internal/i18n"
	"agencysite/internal/projects"
	"agencysite/internal/store"
	"agencysite/internal/testimonials"
)

var testAdmin = core.AdminConfig{Email: "admin@agency.com", Password: "pw"}

// offlineBackend fails every call except contact submissions, so the site runs
// on local storage and fallback samples.
func offlineBackend(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == "/contact" {
		w.WriteHeader(http.StatusCreated)
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
}

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	backend := httptest.NewServer(http.HandlerFunc(offlineBackend))
	t.Cleanup(backend.Close)

	kv := store.NewMemoryKV()
	logger := zap.NewNop()
	client := api.NewClient(&core.BackendConfig{BaseURL: backend.URL}, kv, logger)

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	document := i18n.NewDocument()
	gate := flood.New(2)
	t.Cleanup(gate.Stop)

	return Deps{
		Language:     i18n.NewLanguageContext(ctx, kv, document, logger),
		Document:     document,
		Projects:     projects.NewProvider(ctx, projects.NewService(client), kv, projects.WithRecorder(metrics)),
		Testimonials: testimonials.NewService(client, logger),
		Auth:         auth.NewService(client, testAdmin, logger),
		Contact:      contact.NewService(client, gate, logger),
		Floodgate:    gate,
		Metrics:      metrics,
		Gatherer:     registry,
	}
}

func newTestMux(t *testing.T) (*http.ServeMux, Deps) {
	t.Helper()
	deps := newTestDeps(t)
	return setupRoutes(&core.ServerConfig{AllowOrigins: []string{"*"}}, deps, zap.NewNop()), deps
}

type apiResponse struct {
	OK           bool                `json:"ok"`
	Error        string              `json:"error"`
	Message      string              `json:"message"`
	Mode         string              `json:"mode"`
	Admin        bool                `json:"admin"`
	Locale       string              `json:"locale"`
	Dir          string              `json:"dir"`
	Source       string              `json:"source"`
	Projects     json.RawMessage     `json:"projects"`
	Project      map[string]any      `json:"project"`
	Testimonials []testimonials.View `json:"testimonials"`
	Translations i18n.Tree           `json:"translations"`
	Session      auth.Session        `json:"session"`
	User         auth.User           `json:"user"`
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp apiResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s %s returned invalid JSON: %v", method, path, err)
		}
	}
	return rec, resp
}

func TestCreateHTTPServer(t *testing.T) {
	config := &core.ServerConfig{
		Host:         "0.0.0.0",
		Port:         9090,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	mux := http.NewServeMux()
	server := createHTTPServer(config, mux)

	expectedAddr := "0.0.0.0:9090"
	if server.Addr != expectedAddr {
		t.Errorf("createHTTPServer() Addr = %q, expected %q", server.Addr, expectedAddr)
	}

	if server.Handler != mux {
		t.Errorf("createHTTPServer() Handler mismatch")
	}

	if server.ReadTimeout != config.ReadTimeout {
		t.Errorf("createHTTPServer() ReadTimeout = %v, expected %v", server.ReadTimeout, config.ReadTimeout)
	}

	if server.WriteTimeout != config.WriteTimeout {
		t.Errorf("createHTTPServer() WriteTimeout = %v, expected %v", server.WriteTimeout, config.WriteTimeout)
	}
}

func TestSetupRoutes(t *testing.T) {
	mux, _ := newTestMux(t)

	server := httptest.NewServer(mux)
	defer server.Close()

	tests := []struct {
		path        string
		contentType string
	}{
		{"/healthz", "application/json"},
		{"/readyz", "application/json"},
		{"/metrics", ""},
		{"/", "text/html"},
		{"/api/status", "application/json; charset=utf-8"},
	}

	client := &http.Client{}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+tt.path, http.NoBody)
			resp, err := client.Do(req)
			if err != nil {
				t.Fatalf("Failed to call %s: %v", tt.path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("%s returned status %d, expected %d", tt.path, resp.StatusCode, http.StatusOK)
			}
			if tt.contentType != "" && resp.Header.Get("Content-Type") != tt.contentType {
				t.Errorf("%s Content-Type = %q, expected %q", tt.path, resp.Header.Get("Content-Type"), tt.contentType)
			}
		})
	}
}

func TestHealthzEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	expected := `{"status":"ok","service":"agencysite"}`
	if rec.Body.String() != expected {
		t.Errorf("Expected body %q, got %q", expected, rec.Body.String())
	}
}

func TestReadyzEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))

	expected := `{"status":"ready","service":"agencysite","mode":"local_fallback"}`
	if rec.Body.String() != expected {
		t.Errorf("Expected body %q, got %q", expected, rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	body := rec.Body.String()
	for _, name := range []string{
		`agencysite_provider_mode{mode="local_fallback"} 1`,
		`agencysite_projects 5`,
		`agencysite_backend_calls_total{op="list",outcome="failure"} 1`,
	} {
		if !strings.Contains(body, name) {
			t.Errorf("Expected /metrics to contain %q", name)
		}
	}
}

func TestHomeHandler(t *testing.T) {
	deps := newTestDeps(t)
	handler := homeHandler(deps, zap.NewNop())

	render := func(path string) string {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s returned status %d", path, rec.Code)
		}
		if contentType := rec.Header().Get("Content-Type"); contentType != "text/html" {
			t.Errorf("Expected Content-Type text/html, got %q", contentType)
		}
		return rec.Body.String()
	}

	english := render("/")
	for _, element := range []string{
		"<!DOCTYPE html>",
		`<html lang="en" dir="ltr">`,
		i18n.TreeFor(i18n.English).Nav.Portfolio,
		"Desert Bloom Rebrand",
		"Sarah Al-Mansouri",
		i18n.TreeFor(i18n.English).Admin.OfflineMode,
	} {
		if !strings.Contains(english, element) {
			t.Errorf("Expected English page to contain %q", element)
		}
	}

	override := render("/?lang=ar")
	if !strings.Contains(override, `<html lang="ar" dir="rtl">`) {
		t.Error("Expected ?lang=ar to render an RTL page")
	}

	if err := deps.Language.SetLocale(context.Background(), i18n.Arabic); err != nil {
		t.Fatalf("SetLocale() error = %v", err)
	}
	arabic := render("/")
	for _, element := range []string{
		`<html lang="ar" dir="rtl">`,
		"إعادة هوية ديزرت بلوم",
		"سارة المنصوري",
	} {
		if !strings.Contains(arabic, element) {
			t.Errorf("Expected Arabic page to contain %q", element)
		}
	}
}

func TestHomeHandlerUnknownPath(t *testing.T) {
	deps := newTestDeps(t)
	rec := httptest.NewRecorder()
	homeHandler(deps, zap.NewNop())(rec, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestRenderMarkdown(t *testing.T) {
	got := string(renderMarkdown("**bold** <script>alert(1)</script>"))

	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("renderMarkdown() = %q, expected rendered emphasis", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("renderMarkdown() = %q, expected scripts stripped", got)
	}
}
