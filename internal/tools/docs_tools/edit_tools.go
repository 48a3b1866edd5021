package docs_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/docs-mcp/internal/docs"
	"github.com/teemow/docs-mcp/internal/server"
	"github.com/teemow/docs-mcp/internal/tools/common"
)

func handleInsertText(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("document_id is required"))
	}
	text, err := request.RequireString("text")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("text is required"))
	}
	index := int64(request.GetInt("index", 1))

	if err := sc.DocsClient().InsertText(ctx, documentID, text, index); err != nil {
		return common.ErrorResult(err)
	}

	return common.SuccessResult(
		fmt.Sprintf("Successfully inserted text at position %d", index),
		map[string]any{
			"document_id": documentID,
			"index":       index,
		},
	)
}

func handleReplaceText(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("document_id is required"))
	}
	oldText, err := request.RequireString("old_text")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("old_text is required"))
	}
	newText, err := request.RequireString("new_text")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("new_text is required"))
	}

	occurrences, err := sc.DocsClient().ReplaceText(ctx, documentID, oldText, newText)
	if err != nil {
		return common.ErrorResult(err)
	}

	return common.SuccessResult(
		fmt.Sprintf("Successfully replaced %d occurrence(s)", occurrences),
		map[string]any{
			"document_id":         documentID,
			"occurrences_changed": occurrences,
		},
	)
}

func handleFormatText(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("document_id is required"))
	}
	startIndex, err := request.RequireInt("start_index")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("start_index is required"))
	}
	endIndex, err := request.RequireInt("end_index")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("end_index is required"))
	}

	// Absent and explicit false are different: false clears the property
	var style docs.TextStyleUpdate
	args := request.GetArguments()
	if v, ok := args["bold"].(bool); ok {
		style.Bold = &v
	}
	if v, ok := args["italic"].(bool); ok {
		style.Italic = &v
	}
	if v, ok := args["underline"].(bool); ok {
		style.Underline = &v
	}

	applied, err := sc.DocsClient().FormatText(ctx, documentID, int64(startIndex), int64(endIndex), style)
	if err != nil {
		return common.ErrorResult(err)
	}

	return common.SuccessResult(
		fmt.Sprintf("Successfully applied formatting (%s) to range [%d, %d)", strings.Join(applied, ", "), startIndex, endIndex),
		map[string]any{
			"document_id": documentID,
			"start_index": startIndex,
			"end_index":   endIndex,
			"applied":     applied,
		},
	)
}

func handleInsertImage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("document_id is required"))
	}
	imageURL, err := request.RequireString("image_url")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("image_url is required"))
	}
	index := int64(request.GetInt("index", 1))

	if err := sc.DocsClient().InsertImage(ctx, documentID, imageURL, index); err != nil {
		return common.ErrorResult(err)
	}

	return common.SuccessResult(
		fmt.Sprintf("Successfully inserted image at position %d", index),
		map[string]any{
			"document_id": documentID,
			"image_url":   imageURL,
			"index":       index,
		},
	)
}
