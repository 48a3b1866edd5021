package docs_tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/docs-mcp/internal/docs"
	"github.com/teemow/docs-mcp/internal/instrumentation"
	"github.com/teemow/docs-mcp/internal/server"
	"github.com/teemow/docs-mcp/internal/tools/common"
)

type toolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// RegisterDocsTools registers all Google Docs tools with the MCP server.
// When the server context is read-only, mutating tools are not registered.
func RegisterDocsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registerReadTools(s, sc)

	if !sc.ReadOnly() {
		registerWriteTools(s, sc)
	}

	return nil
}

func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	listDocumentsTool := mcp.NewTool("list_documents",
		mcp.WithDescription("List Google Docs documents from the user's Drive, most recently modified first"),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of documents to return (1-1000, default: 10)"),
		),
	)
	addTool(s, sc, listDocumentsTool, "list_documents", instrumentation.ServiceDrive, "list",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListDocuments(ctx, request, sc)
		})

	getDocumentTool := mcp.NewTool("get_document",
		mcp.WithDescription("Get the content and structure of a Google Docs document"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'json' (default, full document structure), 'markdown', or 'text'"),
		),
	)
	addTool(s, sc, getDocumentTool, "get_document", instrumentation.ServiceDocs, "get",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetDocument(ctx, request, sc)
		})

	exportDocumentTool := mcp.NewTool("export_document",
		mcp.WithDescription("Export a Google Docs document to a file format. Supported formats: "+
			strings.Join(docs.SupportedExportFormats(), ", ")),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The ID of the document to export"),
		),
		mcp.WithString("export_format",
			mcp.Description("Target format (default: pdf)"),
		),
	)
	addTool(s, sc, exportDocumentTool, "export_document", instrumentation.ServiceDrive, "export",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleExportDocument(ctx, request, sc)
		})
}

func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createDocumentTool := mcp.NewTool("create_document",
		mcp.WithDescription("Create a new empty Google Docs document"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the new document"),
		),
	)
	addTool(s, sc, createDocumentTool, "create_document", instrumentation.ServiceDocs, "create",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateDocument(ctx, request, sc)
		})

	insertTextTool := mcp.NewTool("insert_text",
		mcp.WithDescription("Insert text into a Google Docs document at a specific position"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to insert"),
		),
		mcp.WithNumber("index",
			mcp.Description("Position to insert at; 1 is the start of the body (default: 1)"),
		),
	)
	addTool(s, sc, insertTextTool, "insert_text", instrumentation.ServiceDocs, "update",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleInsertText(ctx, request, sc)
		})

	replaceTextTool := mcp.NewTool("replace_text",
		mcp.WithDescription("Replace all occurrences of text in a Google Docs document (case-insensitive)"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("old_text",
			mcp.Required(),
			mcp.Description("The text to find"),
		),
		mcp.WithString("new_text",
			mcp.Required(),
			mcp.Description("The replacement text"),
		),
	)
	addTool(s, sc, replaceTextTool, "replace_text", instrumentation.ServiceDocs, "update",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReplaceText(ctx, request, sc)
		})

	formatTextTool := mcp.NewTool("format_text",
		mcp.WithDescription("Apply character formatting (bold, italic, underline) to a text range in a Google Docs document"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithNumber("start_index",
			mcp.Required(),
			mcp.Description("Start of the range (inclusive, >= 1)"),
		),
		mcp.WithNumber("end_index",
			mcp.Required(),
			mcp.Description("End of the range (exclusive, > start_index)"),
		),
		mcp.WithBoolean("bold",
			mcp.Description("Set or clear bold"),
		),
		mcp.WithBoolean("italic",
			mcp.Description("Set or clear italic"),
		),
		mcp.WithBoolean("underline",
			mcp.Description("Set or clear underline"),
		),
	)
	addTool(s, sc, formatTextTool, "format_text", instrumentation.ServiceDocs, "update",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFormatText(ctx, request, sc)
		})

	insertImageTool := mcp.NewTool("insert_image",
		mcp.WithDescription("Insert an inline image from a publicly accessible URL into a Google Docs document"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("image_url",
			mcp.Required(),
			mcp.Description("Publicly accessible URL of the image"),
		),
		mcp.WithNumber("index",
			mcp.Description("Position to insert at; 1 is the start of the body (default: 1)"),
		),
	)
	addTool(s, sc, insertImageTool, "insert_image", instrumentation.ServiceDocs, "update",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleInsertImage(ctx, request, sc)
		})

	deleteDocumentTool := mcp.NewTool("delete_document",
		mcp.WithDescription("Move a Google Docs document to the Drive trash. The document stays recoverable until the trash is emptied"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The ID of the document to delete"),
		),
	)
	addTool(s, sc, deleteDocumentTool, "delete_document", instrumentation.ServiceDrive, "trash",
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteDocument(ctx, request, sc)
		})
}

func addTool(s *mcpserver.MCPServer, sc *server.ServerContext, tool mcp.Tool, name, service, operation string, handler toolHandler) {
	s.AddTool(tool, common.InstrumentedToolHandler(name, service, operation, sc, handler))
}
