package common

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/docs-mcp/internal/docs"
)

// Envelope is the uniform JSON payload returned by every tool. Successful
// calls carry a human-readable message and optional structured data; failures
// carry the error message and its kind.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// SuccessResult builds a successful tool result carrying the given message
// and optional data as a JSON envelope.
func SuccessResult(message string, data any) (*mcp.CallToolResult, error) {
	envelope := Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}

	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}

// ErrorResult builds a failed tool result from an error. The error kind is
// derived from the docs error taxonomy so clients can distinguish validation
// mistakes from upstream failures.
func ErrorResult(err error) (*mcp.CallToolResult, error) {
	envelope := Envelope{
		Success:   false,
		Error:     err.Error(),
		ErrorKind: string(docs.KindOf(err)),
	}

	payload, marshalErr := json.MarshalIndent(envelope, "", "  ")
	if marshalErr != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultError(string(payload)), nil
}
