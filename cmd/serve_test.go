package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsinelofficial/metamask-dashboard/config"

	"github.com/rs/zerolog"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	return cfg
}

func TestNewRouter(t *testing.T) {
	cfg := testConfig(t)
	dash, err := newDashboard(cfg)
	if err != nil {
		t.Fatalf("newDashboard() error = %v", err)
	}
	r := NewRouter(cfg, dash)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodOptions, "/api/tweets", http.StatusOK},
		{http.MethodGet, "/api/tweets", http.StatusBadRequest},
		{http.MethodGet, "/api/activity", http.StatusOK},
		{http.MethodGet, "/api/stats", http.StatusOK},
		{http.MethodPost, "/api/refresh", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodDelete, "/api/stats", http.StatusMethodNotAllowed},
		{http.MethodOptions, "/health", http.StatusOK},
		{http.MethodOptions, "/api/activity", http.StatusOK},
		{http.MethodOptions, "/api/stats", http.StatusOK},
		{http.MethodOptions, "/api/refresh", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, w.Code)
			}
			if tt.want != http.StatusMethodNotAllowed && w.Header().Get("X-Request-ID") == "" {
				t.Error("Expected request ID header")
			}
			if tt.method == http.MethodOptions {
				if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
					t.Errorf("Expected pre-flight Allow-Origin *, got %q", got)
				}
				if w.Body.Len() != 0 {
					t.Errorf("Expected empty pre-flight body, got %q", w.Body.String())
				}
			}
		})
	}
}

func TestNewDashboard_UnknownMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dashboard.Mode = "replay"

	if _, err := newDashboard(cfg); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("logging:\n  level: warn\n  pretty: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prev := configDir
	configDir = dir
	defer func() {
		configDir = prev
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}()

	cfg := setup()
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected level warn from config file, got %q", cfg.Logging.Level)
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("Expected logger initialized at warn, got %v", zerolog.GlobalLevel())
	}
}
