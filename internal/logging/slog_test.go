package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	if attr.Key != KeyError {
		t.Errorf("Expected key %s, got %s", KeyError, attr.Key)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("Expected value boom, got %s", attr.Value.String())
	}
}

func TestErr_Nil(t *testing.T) {
	attr := Err(nil)
	// A nil error must produce an empty group that slog omits
	if attr.Key != "" {
		t.Errorf("Expected empty key for nil error, got %s", attr.Key)
	}
	if attr.Value.Kind() != slog.KindGroup {
		t.Errorf("Expected group kind for nil error, got %v", attr.Value.Kind())
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "empty token", token: "", expected: "<empty>"},
		{name: "short token", token: "abc", expected: "[token:3 chars]"},
		{name: "long token", token: "ya29.a0AfH6SMBx7-long-token-value", expected: "[token:33 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeToken(tt.token)
			if result != tt.expected {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, result, tt.expected)
			}
		})
	}
}

func TestAttributeHelpers(t *testing.T) {
	if attr := Operation("list"); attr.Key != KeyOperation || attr.Value.String() != "list" {
		t.Errorf("Operation attr mismatch: %v", attr)
	}
	if attr := Service("docs"); attr.Key != KeyService || attr.Value.String() != "docs" {
		t.Errorf("Service attr mismatch: %v", attr)
	}
	if attr := Tool("insert_text"); attr.Key != KeyTool || attr.Value.String() != "insert_text" {
		t.Errorf("Tool attr mismatch: %v", attr)
	}
	if attr := Document("doc123"); attr.Key != KeyDocument || attr.Value.String() != "doc123" {
		t.Errorf("Document attr mismatch: %v", attr)
	}
	if attr := Status(StatusSuccess); attr.Key != KeyStatus || attr.Value.String() != "success" {
		t.Errorf("Status attr mismatch: %v", attr)
	}
}

func TestSetup(t *testing.T) {
	logger := Setup(true)
	if logger == nil {
		t.Fatal("Setup returned nil logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be enabled with debug=true")
	}

	logger = Setup(false)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be disabled with debug=false")
	}
}
