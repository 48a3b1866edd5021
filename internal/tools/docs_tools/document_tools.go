package docs_tools

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/docs-mcp/internal/docs"
	"github.com/teemow/docs-mcp/internal/server"
	"github.com/teemow/docs-mcp/internal/tools/common"
)

func handleListDocuments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	maxResults := request.GetInt("max_results", docs.DefaultMaxResults)

	documents, err := sc.DocsClient().ListDocuments(ctx, maxResults)
	if err != nil {
		return common.ErrorResult(err)
	}

	return common.SuccessResult(
		fmt.Sprintf("Found %d document(s)", len(documents)),
		map[string]any{
			"documents": documents,
			"count":     len(documents),
		},
	)
}

func handleGetDocument(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("document_id is required"))
	}

	format := request.GetString("format", "json")
	if format != "json" && format != "markdown" && format != "text" {
		return common.ErrorResult(docs.NewValidationError("invalid format %q, must be 'json', 'markdown' or 'text'", format))
	}

	doc, err := sc.DocsClient().GetDocument(ctx, documentID)
	if err != nil {
		return common.ErrorResult(err)
	}

	switch format {
	case "markdown":
		content, err := docs.DocumentToMarkdown(doc)
		if err != nil {
			return common.ErrorResult(err)
		}
		return common.SuccessResult(
			fmt.Sprintf("Retrieved document %q", doc.Title),
			map[string]any{
				"document_id": doc.DocumentId,
				"title":       doc.Title,
				"format":      format,
				"content":     content,
			},
		)

	case "text":
		content, err := docs.DocumentToPlainText(doc)
		if err != nil {
			return common.ErrorResult(err)
		}
		return common.SuccessResult(
			fmt.Sprintf("Retrieved document %q", doc.Title),
			map[string]any{
				"document_id": doc.DocumentId,
				"title":       doc.Title,
				"format":      format,
				"content":     content,
			},
		)

	default:
		return common.SuccessResult(
			fmt.Sprintf("Retrieved document %q", doc.Title),
			map[string]any{
				"document_id": doc.DocumentId,
				"title":       doc.Title,
				"format":      format,
				"document":    doc,
			},
		)
	}
}

func handleCreateDocument(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("title is required"))
	}

	info, err := sc.DocsClient().CreateDocument(ctx, title)
	if err != nil {
		return common.ErrorResult(err)
	}

	return common.SuccessResult(
		fmt.Sprintf("Successfully created document %q", info.Name),
		info,
	)
}

func handleExportDocument(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("document_id is required"))
	}

	format := request.GetString("export_format", "pdf")

	result, err := sc.DocsClient().ExportDocument(ctx, documentID, format)
	if err != nil {
		return common.ErrorResult(err)
	}

	return common.SuccessResult(
		fmt.Sprintf("Successfully exported document as %s (%d bytes)", result.Format, len(result.Content)),
		map[string]any{
			"document_id":    result.DocumentID,
			"format":         result.Format,
			"mime_type":      result.MimeType,
			"size_bytes":     len(result.Content),
			"content_base64": base64.StdEncoding.EncodeToString(result.Content),
		},
	)
}

func handleDeleteDocument(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return common.ErrorResult(docs.NewValidationError("document_id is required"))
	}

	if err := sc.DocsClient().TrashDocument(ctx, documentID); err != nil {
		return common.ErrorResult(err)
	}

	return common.SuccessResult(
		fmt.Sprintf("Successfully moved document %s to trash", documentID),
		map[string]any{
			"document_id": documentID,
			"trashed":     true,
		},
	)
}
