package common

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/docs-mcp/internal/docs"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) != 1 {
		t.Fatalf("expected exactly one content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestSuccessResult(t *testing.T) {
	result, err := SuccessResult("Document created successfully", map[string]string{"document_id": "D1"})
	if err != nil {
		t.Fatalf("SuccessResult returned error: %v", err)
	}
	if result.IsError {
		t.Error("expected success result")
	}

	var envelope Envelope
	if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}

	if !envelope.Success {
		t.Error("expected success=true")
	}
	if envelope.Message != "Document created successfully" {
		t.Errorf("unexpected message: %q", envelope.Message)
	}
	if envelope.Error != "" || envelope.ErrorKind != "" {
		t.Errorf("expected no error fields, got error=%q kind=%q", envelope.Error, envelope.ErrorKind)
	}

	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", envelope.Data)
	}
	if data["document_id"] != "D1" {
		t.Errorf("unexpected data: %v", data)
	}
}

func TestErrorResult(t *testing.T) {
	result, err := ErrorResult(docs.NewValidationError("index must be >= 1, got %d", 0))
	if err != nil {
		t.Fatalf("ErrorResult returned error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result")
	}

	var envelope Envelope
	if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}

	if envelope.Success {
		t.Error("expected success=false")
	}
	if envelope.Error != "index must be >= 1, got 0" {
		t.Errorf("unexpected error: %q", envelope.Error)
	}
	if envelope.ErrorKind != string(docs.KindValidation) {
		t.Errorf("expected validation kind, got %q", envelope.ErrorKind)
	}
}

func TestErrorResult_KindPassthrough(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind docs.ErrorKind
	}{
		{name: "not_found", err: &docs.Error{Kind: docs.KindNotFound, Message: "gone"}, kind: docs.KindNotFound},
		{name: "rate_limit", err: &docs.Error{Kind: docs.KindRateLimit, Message: "slow down"}, kind: docs.KindRateLimit},
		{name: "authentication", err: &docs.Error{Kind: docs.KindAuthentication, Message: "bad token"}, kind: docs.KindAuthentication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ErrorResult(tt.err)
			if err != nil {
				t.Fatalf("ErrorResult returned error: %v", err)
			}

			var envelope Envelope
			if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
				t.Fatalf("failed to decode envelope: %v", err)
			}
			if envelope.ErrorKind != string(tt.kind) {
				t.Errorf("expected kind %s, got %s", tt.kind, envelope.ErrorKind)
			}
		})
	}
}
