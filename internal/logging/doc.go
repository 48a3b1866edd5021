// Package logging provides slog helpers for consistent structured logging.
//
// It defines the attribute keys used across the codebase and small helpers
// for building attributes, so log lines stay uniform and greppable.
package logging
