package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
		want     slog.Level
		ok       bool
	}{
		{name: "debug level", logLevel: "debug", want: slog.LevelDebug, ok: true},
		{name: "info level", logLevel: "info", want: slog.LevelInfo, ok: true},
		{name: "warn level", logLevel: "warn", want: slog.LevelWarn, ok: true},
		{name: "error level", logLevel: "error", want: slog.LevelError, ok: true},
		{name: "case insensitive - DEBUG", logLevel: "DEBUG", want: slog.LevelDebug, ok: true},
		{name: "case insensitive - Info", logLevel: "Info", want: slog.LevelInfo, ok: true},
		{name: "unknown level", logLevel: "verbose", want: slog.LevelInfo, ok: false},
		{name: "empty level", logLevel: "", want: slog.LevelInfo, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.logLevel)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "warn")

	l.Info("info test message")
	l.Warn("warn test message", "author_id", 42)

	output := buf.String()
	assert.NotContains(t, output, "info test message")
	require.Contains(t, output, "warn test message")

	var entry map[string]interface{}
	line := strings.TrimSpace(output)
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(42), entry["author_id"])
}

func TestNew_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "invalid_level")

	l.Debug("debug test message")
	l.Info("info test message")

	assert.NotContains(t, buf.String(), "debug test message")
	assert.Contains(t, buf.String(), "info test message")
}

func TestSetup(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	l, err := logger.Setup(config.ServerConfig{LogLevel: "info", Port: 8080})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, l, slog.Default())
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//nolint:staticcheck // nil context is part of the contract under test
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}
