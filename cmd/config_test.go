package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "LSG", envPrefix)
	assert.Equal(t, "log.filename", logFilenameKey)
	assert.Equal(t, "log.level", logLevelKey)
	assert.Equal(t, "log.max_size", logMaxSizeKey)
	assert.Equal(t, "log.max_backups", logMaxBackupsKey)
	assert.Equal(t, "log.max_age", logMaxAgeKey)
	assert.Equal(t, "log.compress", logCompressKey)
	assert.Equal(t, int(slog.LevelWarn), defaultLogLevel)
	assert.Equal(t, 10, defaultLogMaxSize)
	assert.Equal(t, 3, defaultLogMaxBackups)
	assert.Equal(t, 28, defaultLogMaxAge)
	assert.Equal(t, true, defaultLogCompress)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	configureLogger()
	assert.NotNil(t, globalLogger)
}
