package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultOTLPEndpoint = "localhost:4317"
	defaultLogLevel     = "info"
	serviceName         = "library-circulation-demo"

	envTraceEndpoint  = "LIBRARY_OTEL_TRACE_ENDPOINT"
	envMetricEndpoint = "LIBRARY_OTEL_METRIC_ENDPOINT"
	envLogLevel       = "LIBRARY_LOG_LEVEL"
)

// Config holds all demo configuration parameters.
type Config struct {
	ObservabilityEnabled bool
	JournalPath          string
	LogLevel             slog.Level
	TraceEndpoint        string
	MetricEndpoint       string
}

// loadEnvFiles loads .env.local into the process environment. A missing file is not an error.
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
}

// parseConfig parses command line args, using lookupEnv for defaults and endpoints.
func parseConfig(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	flags := flag.NewFlagSet("librarydemo", flag.ContinueOnError)

	var (
		observability = flags.Bool("observability-enabled", false, "Enable OpenTelemetry observability")
		journalPath   = flags.String("journal", "", "Write the circulation journal as JSON lines to this file (\"-\" for stdout)")
		logLevel      = flags.String("log-level", envOr(lookupEnv, envLogLevel, defaultLogLevel), "Log level: debug, info, warn, error")
	)

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ObservabilityEnabled: *observability,
		JournalPath:          *journalPath,
		LogLevel:             level,
		TraceEndpoint:        envOr(lookupEnv, envTraceEndpoint, defaultOTLPEndpoint),
		MetricEndpoint:       envOr(lookupEnv, envMetricEndpoint, defaultOTLPEndpoint),
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}

func envOr(lookupEnv func(string) (string, bool), key, fallback string) string {
	if value, ok := lookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}

	return fallback
}
