package observability

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/sistema-tickets/helpdesk-service/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          config.LoggerConfig
		debugEnabled bool
	}{
		{"json default", config.LoggerConfig{Level: "info", Format: "json"}, false},
		{"console format", config.LoggerConfig{Level: "debug", Format: "console"}, true},
		{"unknown level falls back to info", config.LoggerConfig{Level: "chatty"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			if got := logger.Core().Enabled(zapcore.DebugLevel); got != tt.debugEnabled {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugEnabled)
			}
		})
	}
}
