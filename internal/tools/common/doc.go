// Package common provides shared helpers for MCP tool handlers: the JSON
// response envelope every tool returns and the instrumentation wrapper that
// records metrics and audit logs around handler execution.
package common
