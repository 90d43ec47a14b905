package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.WebServer.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.WebServer.Port)
	}
	if cfg.Upstream.APIKeyEnv != "TWITTER_API_KEY" {
		t.Errorf("Expected TWITTER_API_KEY, got %s", cfg.Upstream.APIKeyEnv)
	}
	if cfg.Dashboard.Mode != "static" {
		t.Errorf("Expected static mode by default, got %s", cfg.Dashboard.Mode)
	}
	if len(cfg.Competitors) != 5 {
		t.Errorf("Expected 5 default competitors, got %d", len(cfg.Competitors))
	}
	if len(cfg.Classifier.Priority) != 2 || cfg.Classifier.Priority[0] != "partnership" {
		t.Errorf("Unexpected classifier priority %v", cfg.Classifier.Priority)
	}
}

func TestMustLoadConfig(t *testing.T) {
	cfg := MustLoadConfig(t.TempDir())
	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("Expected default address, got %s", cfg.Address())
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
dashboard:
  mode: live
classifier:
  priority: [campaign]
  keywords:
    campaign: [airdrop]
competitors:
  - name: Zerion
    handle: zerion
    icon: "Z"
    color: "#2962EF"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Dashboard.Mode != "live" {
		t.Errorf("Expected live mode, got %s", cfg.Dashboard.Mode)
	}
	if len(cfg.Competitors) != 1 || cfg.Competitors[0].Handle != "zerion" {
		t.Errorf("Unexpected competitors %+v", cfg.Competitors)
	}
	if got := cfg.Classifier.Keywords["campaign"]; len(got) != 1 || got[0] != "airdrop" {
		t.Errorf("Unexpected campaign keywords %v", got)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("CIDASH_WEBSERVER_PORT", "9999")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.WebServer.Port != "9999" {
		t.Errorf("Expected port override 9999, got %s", cfg.WebServer.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"Bad mode", func(c *Config) { c.Dashboard.Mode = "replay" }, true},
		{"Duplicate competitor", func(c *Config) { c.Competitors = append(c.Competitors, c.Competitors[0]) }, true},
		{"Unknown priority set", func(c *Config) { c.Classifier.Priority = append(c.Classifier.Priority, "event") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Dashboard:   DashboardConfig{Mode: "static"},
				Classifier:  DefaultClassifier(),
				Competitors: DefaultCompetitors(),
			}
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
