package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the mlb-mcp application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// APIConfig contains upstream MLB Stats API settings.
// The upstream is public and unauthenticated; only the base URL and the
// request timeout are configurable.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// Timeout returns the configured upstream request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "mlb-mcp",
			Port: "4270",
		},
		API: APIConfig{
			BaseURL:        "https://statsapi.mlb.com/api/v1",
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/mlb-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// A missing config file is not an error; defaults and env overrides apply.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else {
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies MLB_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("MLB_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if base := os.Getenv("MLB_API_BASE_URL"); base != "" {
		config.API.BaseURL = base
	}
	if timeout := os.Getenv("MLB_API_TIMEOUT_SECONDS"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			config.API.TimeoutSeconds = t
		}
	}
	if level := os.Getenv("MLB_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
