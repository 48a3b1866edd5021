// Package docs_tools registers the Google Docs MCP tools: listing, reading,
// creating, editing, exporting and trashing documents. In read-only mode only
// the non-mutating tools are registered.
package docs_tools
