package server

import (
	"context"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/docs-mcp/internal/instrumentation"
)

// SessionHooks returns MCP server hooks that track the number of connected
// client sessions in the active_sessions metric. Safe with nil metrics.
func SessionHooks(m *instrumentation.Metrics) *mcpserver.Hooks {
	hooks := &mcpserver.Hooks{}

	hooks.AddOnRegisterSession(func(ctx context.Context, session mcpserver.ClientSession) {
		m.IncrementActiveSessions(ctx)
	})
	hooks.AddOnUnregisterSession(func(ctx context.Context, session mcpserver.ClientSession) {
		m.DecrementActiveSessions(ctx)
	})

	return hooks
}
