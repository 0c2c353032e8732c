// Package testdoubles provides spies for the observability interfaces:
//   - MetricsCollectorSpy: captures duration, counter and value recordings
//   - TracingCollectorSpy: captures started and finished spans
//   - ContextualLoggerSpy: captures contextual log records per level
//
// They let tests assert on instrumentation without a telemetry backend.
package testdoubles
