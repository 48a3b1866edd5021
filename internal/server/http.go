package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	// DefaultHTTPAddr is the default listen address for the MCP HTTP server.
	DefaultHTTPAddr = ":8080"

	// MCPEndpointPath is the path the streamable HTTP transport is served on.
	MCPEndpointPath = "/mcp"
)

// HTTPServer serves the MCP server over the streamable HTTP transport and
// exposes health endpoints next to it. Requests to the MCP endpoint are
// instrumented with HTTP metrics.
type HTTPServer struct {
	mcpServer     *mcpserver.MCPServer
	serverContext *ServerContext
	healthChecker *HealthChecker
	httpServer    *http.Server
}

// NewHTTPServer creates a new HTTP server wrapping the given MCP server.
func NewHTTPServer(mcpServer *mcpserver.MCPServer, sc *ServerContext) *HTTPServer {
	return &HTTPServer{
		mcpServer:     mcpServer,
		serverContext: sc,
		healthChecker: NewHealthChecker(sc),
	}
}

// HealthChecker returns the health checker so callers can flip readiness
// during shutdown.
func (s *HTTPServer) HealthChecker() *HealthChecker {
	return s.healthChecker
}

// Start starts the HTTP server in a blocking manner.
func (s *HTTPServer) Start(addr string) error {
	if addr == "" {
		addr = DefaultHTTPAddr
	}

	mux := http.NewServeMux()

	s.healthChecker.RegisterHealthEndpoints(mux)

	streamableServer := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath(MCPEndpointPath),
	)
	mux.Handle(MCPEndpointPath, s.metricsMiddleware(streamableServer))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("starting HTTP server", "addr", addr, "endpoint", MCPEndpointPath)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server. Readiness is flipped first so
// load balancers stop routing new traffic while in-flight requests drain.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.healthChecker.SetReady(false)

	if s.httpServer != nil {
		slog.Info("shutting down HTTP server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// metricsMiddleware records request count and duration for the MCP endpoint.
func (s *HTTPServer) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics := s.serverContext.Metrics()
		if metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
