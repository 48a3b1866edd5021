package server

import (
	"context"
	"testing"

	"github.com/teemow/docs-mcp/internal/google"
)

func newTestServerContext(t *testing.T) *ServerContext {
	t.Helper()

	creds, err := google.NewCredentials("test-token")
	if err != nil {
		t.Fatalf("NewCredentials returned error: %v", err)
	}

	sc, err := NewServerContext(context.Background(), Config{Credentials: creds})
	if err != nil {
		t.Fatalf("NewServerContext returned error: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })

	return sc
}

func TestNewServerContext(t *testing.T) {
	sc := newTestServerContext(t)

	if sc.DocsClient() == nil {
		t.Error("expected Docs client to be created at startup")
	}
	if sc.ReadOnly() {
		t.Error("expected read-only to default to false")
	}
	if sc.IsShutdown() {
		t.Error("expected server context to not be shut down")
	}
	if sc.Metrics() != nil {
		t.Error("expected nil metrics without instrumentation provider")
	}
}

func TestNewServerContext_RequiresCredentials(t *testing.T) {
	if _, err := NewServerContext(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestNewServerContext_ReadOnly(t *testing.T) {
	creds, err := google.NewCredentials("test-token")
	if err != nil {
		t.Fatalf("NewCredentials returned error: %v", err)
	}

	sc, err := NewServerContext(context.Background(), Config{Credentials: creds, ReadOnly: true})
	if err != nil {
		t.Fatalf("NewServerContext returned error: %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if !sc.ReadOnly() {
		t.Error("expected read-only mode")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := newTestServerContext(t)

	if err := sc.Shutdown(); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("expected IsShutdown to be true after Shutdown")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("expected server context to be cancelled after Shutdown")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown returned error: %v", err)
	}
}
