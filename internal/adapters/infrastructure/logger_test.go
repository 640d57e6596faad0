package infrastructure

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/ports"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, expected := range tests {
		assert.Equal(t, expected, ParseLevel(in), in)
	}
}

func TestSlogLoggerAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(NewSlogHandler(&buf, "info", "json")))

	logger.Debug("hidden")
	logger.Info("subscription created", ports.F("subscription_id", 7), ports.F("error", errors.New("none")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "subscription created", entry["msg"])
	assert.Equal(t, float64(7), entry["subscription_id"])
	assert.Equal(t, "none", entry["error"])
}

func TestSlogLoggerAdapter_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(NewSlogHandler(&buf, "debug", "text")))

	logger.Warn("breaker opened", ports.F("provider", "weatherbit"))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "provider=weatherbit")
}

func TestSlogLoggerAdapter_NilUsesDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSlogLoggerAdapter(nil).Error("fallback")
	})
}
