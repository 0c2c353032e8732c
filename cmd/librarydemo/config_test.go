package main

import (
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseConfig_Defaults(t *testing.T) {
	// act
	cfg, err := parseConfig(nil, givenEnv(nil))

	// assert
	require.NoError(t, err)
	assert.False(t, cfg.ObservabilityEnabled)
	assert.Empty(t, cfg.JournalPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, defaultOTLPEndpoint, cfg.TraceEndpoint)
	assert.Equal(t, defaultOTLPEndpoint, cfg.MetricEndpoint)
}

func Test_parseConfig_FlagsAndEnvironment(t *testing.T) {
	// arrange
	env := givenEnv(map[string]string{
		envTraceEndpoint:  "jaeger:4319",
		envMetricEndpoint: " collector:4317 ",
		envLogLevel:       "warn",
	})

	// act
	cfg, err := parseConfig([]string{"-observability-enabled", "-journal", "-", "-log-level", "debug"}, env)

	// assert
	require.NoError(t, err)
	assert.True(t, cfg.ObservabilityEnabled)
	assert.Equal(t, "-", cfg.JournalPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel, "the flag overrides the environment")
	assert.Equal(t, "jaeger:4319", cfg.TraceEndpoint)
	assert.Equal(t, "collector:4317", cfg.MetricEndpoint)
}

func Test_parseConfig_LogLevelFromEnvironment(t *testing.T) {
	// act
	cfg, err := parseConfig(nil, givenEnv(map[string]string{envLogLevel: "error"}))

	// assert
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
}

func Test_parseConfig_Errors(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
	}{
		{description: "unknown flag", args: []string{"-rate", "10"}},
		{description: "invalid log level", args: []string{"-log-level", "chatty"}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			_, err := parseConfig(tc.args, givenEnv(nil))

			// assert
			assert.Error(t, err)
		})
	}
}

func Test_parseConfig_Help(t *testing.T) {
	// act
	_, err := parseConfig([]string{"-h"}, givenEnv(nil))

	// assert
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func givenEnv(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}
