package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/teemow/docs-mcp/internal/docs"
	"github.com/teemow/docs-mcp/internal/google"
	"github.com/teemow/docs-mcp/internal/instrumentation"
)

// Config holds the dependencies for a ServerContext.
type Config struct {
	// Credentials authenticate the Google API client.
	Credentials *google.Credentials

	// ReadOnly suppresses registration of mutating tools when true.
	ReadOnly bool

	// Instrumentation is the OpenTelemetry provider. Optional; when nil the
	// server runs without metrics.
	Instrumentation *instrumentation.Provider

	// AuditLogger records tool invocations. Optional.
	AuditLogger *instrumentation.AuditLogger
}

// ServerContext holds the context for the MCP server. The Docs client is
// created once at startup so a missing or empty token fails fast instead of
// on the first tool call.
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	docsClient  *docs.Client
	provider    *instrumentation.Provider
	auditLogger *instrumentation.AuditLogger
	readOnly    bool
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context and the Google Docs client.
func NewServerContext(ctx context.Context, config Config) (*ServerContext, error) {
	if config.Credentials == nil {
		return nil, fmt.Errorf("credentials are required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	client, err := docs.NewClient(shutdownCtx, config.Credentials.TokenSource())
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create Docs client: %w", err)
	}

	return &ServerContext{
		ctx:         shutdownCtx,
		cancel:      cancel,
		docsClient:  client,
		provider:    config.Instrumentation,
		auditLogger: config.AuditLogger,
		readOnly:    config.ReadOnly,
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// DocsClient returns the Google Docs client.
func (sc *ServerContext) DocsClient() *docs.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.docsClient
}

// SetDocsClient replaces the Docs client. Used by tests to inject a client
// pointed at a fake backend.
func (sc *ServerContext) SetDocsClient(client *docs.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.docsClient = client
}

// ReadOnly returns whether the server runs in read-only mode.
func (sc *ServerContext) ReadOnly() bool {
	return sc.readOnly
}

// Metrics returns the metrics recorder, or nil if instrumentation is not
// configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	if sc.provider == nil {
		return nil
	}
	return sc.provider.Metrics()
}

// AuditLogger returns the audit logger, or nil if not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	return sc.auditLogger
}

// InstrumentationProvider returns the OpenTelemetry provider, or nil.
func (sc *ServerContext) InstrumentationProvider() *instrumentation.Provider {
	return sc.provider
}

// IsShutdown returns whether the server has been shut down.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
