package server

import (
	"context"
	"testing"

	"github.com/teemow/docs-mcp/internal/instrumentation"
)

func TestNewMetricsServer_RequiresProvider(t *testing.T) {
	if _, err := NewMetricsServer(MetricsServerConfig{Addr: ":9090"}); err == nil {
		t.Fatal("expected error without instrumentation provider")
	}
}

func TestNewMetricsServer_RequiresEnabledProvider(t *testing.T) {
	config := instrumentation.DefaultConfig()
	config.Enabled = false

	provider, err := instrumentation.NewProvider(context.Background(), config)
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	if _, err := NewMetricsServer(MetricsServerConfig{InstrumentationProvider: provider}); err == nil {
		t.Fatal("expected error with disabled instrumentation provider")
	}
}

func TestNewMetricsServer_DefaultAddr(t *testing.T) {
	config := instrumentation.DefaultConfig()
	config.MetricsExporter = instrumentation.ExporterStdout

	provider, err := instrumentation.NewProvider(context.Background(), config)
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	srv, err := NewMetricsServer(MetricsServerConfig{InstrumentationProvider: provider})
	if err != nil {
		t.Fatalf("NewMetricsServer returned error: %v", err)
	}
	if srv.Addr() != DefaultMetricsAddr {
		t.Errorf("expected default addr %s, got %s", DefaultMetricsAddr, srv.Addr())
	}
}
