// Package server holds the runtime context shared by all MCP tool handlers
// and the HTTP serving layer: the Google Docs client, instrumentation
// accessors, health check endpoints for Kubernetes probes and the dedicated
// Prometheus metrics server.
package server
