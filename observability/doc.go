// Package observability defines the dependency-free observability contracts used by the
// borrowing workflow: plain and contextual logging, metrics and distributed tracing.
//
// The interfaces are shaped after log/slog and OpenTelemetry so that *slog.Logger satisfies
// both logger interfaces directly and the oteladapters subpackage can map everything onto
// OpenTelemetry. Nothing in this package imports a telemetry backend.
package observability
