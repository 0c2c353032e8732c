// Package main runs a scripted circulation against an in-memory library.
//
// It seeds an inventory and a user registry, lends and returns books through the borrowing
// service (including a few requests that the business rules refuse), and prints the final
// state as JSON. The circulation journal can be written as JSON lines.
//
// Flags:
//
//	-observability-enabled  export traces and metrics via OTLP gRPC
//	-journal                write the journal to this file ("-" for stdout)
//	-log-level              debug, info, warn or error
//
// Settings are also read from a .env.local file and the environment:
//
//	LIBRARY_OTEL_TRACE_ENDPOINT   OTLP gRPC endpoint for traces (default localhost:4317)
//	LIBRARY_OTEL_METRIC_ENDPOINT  OTLP gRPC endpoint for metrics (default localhost:4317)
//	LIBRARY_LOG_LEVEL             default for -log-level
package main
