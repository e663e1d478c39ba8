package common

import (
	"testing"

	"github.com/statgrove/mlb-mcp/internal/config"
)

func TestNewSilentLogger(t *testing.T) {
	logger := NewSilentLogger()
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}
	// Must not panic or write anywhere.
	logger.Info().Str("key", "value").Msg("discarded")
	logger.Error().Msg("also discarded")
}

func TestNewLoggerFromConfig_ConsoleOnly(t *testing.T) {
	logger := NewLoggerFromConfig(config.LoggingConfig{
		Level:   "error",
		Outputs: []string{"console"},
	})
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}
	logger.Debug().Msg("below threshold")
}

func TestLogger_WithCorrelationId(t *testing.T) {
	logger := NewSilentLogger()
	scoped := logger.WithCorrelationId("abc-123")
	if scoped == nil {
		t.Fatal("Expected non-nil scoped logger")
	}
	if scoped == logger {
		t.Error("Expected a new logger instance")
	}
	scoped.Info().Msg("correlated")
}
