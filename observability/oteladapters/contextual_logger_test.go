package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/AntonStoeckl/library-circulation-go/observability/oteladapters"
)

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "info message")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"msg":"debug message"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"level":"ERROR"`)
}

func Test_SlogBridgeLogger_WithAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, nil))

	logger.InfoContext(context.Background(), "borrowing operation completed",
		"operation", "borrow",
		"user_id", "1",
		"duration_ms", 0.5,
	)

	output := buf.String()
	assert.Contains(t, output, `"operation":"borrow"`)
	assert.Contains(t, output, `"user_id":"1"`)
	assert.Contains(t, output, `"duration_ms":0.5`)
}

func Test_NewSlogBridgeLogger_UsesGlobalProvider(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("library-circulation-test")

	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "info message", "key", "value")
	})
}

func Test_OTelLogger_ArgumentHandling(t *testing.T) {
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "debug message", "key", "value")
		logger.InfoContext(ctx, "mixed", "string", "text", "number", 123, "bool", false)
		logger.WarnContext(ctx, "odd args", "key1", "value1", "dangling")
		logger.ErrorContext(ctx, "non-string key", 42, "value")
	})
}
