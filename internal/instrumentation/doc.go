// Package instrumentation provides OpenTelemetry metrics and tracing for the
// docs-mcp server, plus structured audit logging of tool invocations.
//
// Metrics are exported through Prometheus by default; OTLP and stdout
// exporters are available via configuration. Tracing is disabled by default
// and can be enabled with an OTLP or stdout exporter.
//
// All recorders are nil-safe: when instrumentation is disabled the Provider
// hands out a no-op Metrics recorder and recording calls become cheap no-ops.
package instrumentation
