// Package google handles the Google API credential for the MCP server.
//
// The server does not implement an OAuth flow. It expects a pre-obtained
// OAuth access token in the GOOGLE_ACCESS_TOKEN environment variable, read
// once at startup. The token is wrapped in an immutable Credentials value
// and shared read-only across all tool invocations.
package google
