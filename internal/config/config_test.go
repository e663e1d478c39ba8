package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Name != "mlb-mcp" {
		t.Errorf("Expected server name mlb-mcp, got %q", cfg.Server.Name)
	}
	if cfg.Server.Port != "4270" {
		t.Errorf("Expected port 4270, got %q", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "https://statsapi.mlb.com/api/v1" {
		t.Errorf("Unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.API.Timeout())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected info level, got %q", cfg.Logging.Level)
	}
}

func TestAPIConfig_Timeout_Fallback(t *testing.T) {
	cfg := APIConfig{TimeoutSeconds: 0}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Expected 30s fallback, got %v", cfg.Timeout())
	}
	cfg.TimeoutSeconds = 10
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Expected 10s, got %v", cfg.Timeout())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mlb-mcp.toml")
	content := `
[server]
name = "mlb-mcp-dev"
port = "9999"

[api]
base_url = "http://localhost:8080/api/v1"
timeout_seconds = 5

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Name != "mlb-mcp-dev" {
		t.Errorf("Expected name mlb-mcp-dev, got %q", cfg.Server.Name)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("Expected port 9999, got %q", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("Unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.API.Timeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}
	if cfg.Server.Port != "4270" {
		t.Errorf("Expected default port, got %q", cfg.Server.Port)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("not valid toml ==="), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("Expected error for invalid TOML")
	}
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("MLB_MCP_PORT", "5000")
	t.Setenv("MLB_API_BASE_URL", "http://stub:1234/api/v1")
	t.Setenv("MLB_API_TIMEOUT_SECONDS", "7")
	t.Setenv("MLB_LOG_LEVEL", "warn")

	cfg, err := LoadFromFile("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Port != "5000" {
		t.Errorf("Expected port override 5000, got %q", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "http://stub:1234/api/v1" {
		t.Errorf("Expected base URL override, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 7*time.Second {
		t.Errorf("Expected 7s timeout, got %v", cfg.API.Timeout())
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected warn level, got %q", cfg.Logging.Level)
	}
}
