// Package oteladapters maps the observability interfaces onto OpenTelemetry.
//
//   - MetricsCollector: durations to histograms, counters to counters, values to gauges
//   - TracingCollector: spans with status codes derived from the operation status
//   - SlogBridgeLogger / OTelLogger: contextual logging with trace correlation
//
// All adapters use whatever providers the caller configured; they never set globals.
package oteladapters
