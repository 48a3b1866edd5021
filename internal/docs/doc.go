// Package docs implements the request/response adapter for Google Docs and
// Google Drive.
//
// The Client maps each tool operation onto exactly one Google API call:
// document listing, retrieval, creation, export and trashing via the Drive
// API, and text/image edits via the Docs batchUpdate API. Parameters are
// validated locally before any network call, and every upstream failure is
// classified into a closed set of error kinds (see errors.go) so the tool
// layer can produce a uniform result envelope.
//
// The client is stateless between calls and safe for concurrent use; the
// only mutable state is inside the underlying HTTP transport.
package docs
