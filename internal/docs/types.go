package docs

// DocsMimeType is the Drive MIME type identifying Google Docs documents.
const DocsMimeType = "application/vnd.google-apps.document"

// Listing page size bounds. Out-of-range values are clamped, not rejected.
const (
	DefaultMaxResults = 10
	MinMaxResults     = 1
	MaxMaxResults     = 1000
)

// DocumentInfo represents metadata about a Google Docs document.
type DocumentInfo struct {
	// ID is the unique identifier for the document
	ID string `json:"id"`

	// Name is the document title as shown in Drive
	Name string `json:"name"`

	// CreatedTime is when the document was created (RFC 3339)
	CreatedTime string `json:"createdTime,omitempty"`

	// ModifiedTime is when the document was last modified (RFC 3339)
	ModifiedTime string `json:"modifiedTime,omitempty"`

	// WebViewLink is a link for opening the document in the Docs editor
	WebViewLink string `json:"webViewLink,omitempty"`

	// Owners are the owners of the document
	Owners []User `json:"owners,omitempty"`
}

// User represents a Google Drive user (document owner).
type User struct {
	// DisplayName is the display name of the user
	DisplayName string `json:"displayName"`

	// EmailAddress is the email address of the user
	EmailAddress string `json:"emailAddress"`
}

// TextStyleUpdate holds the tri-state formatting options for FormatText.
// A nil field leaves that property untouched; an explicit false clears it.
type TextStyleUpdate struct {
	Bold      *bool
	Italic    *bool
	Underline *bool
}

// IsEmpty reports whether no formatting option was provided.
func (s TextStyleUpdate) IsEmpty() bool {
	return s.Bold == nil && s.Italic == nil && s.Underline == nil
}

// ExportResult holds the outcome of a document export.
type ExportResult struct {
	// DocumentID is the exported document
	DocumentID string `json:"documentId"`

	// Format is the requested export format (pdf, docx, ...)
	Format string `json:"format"`

	// MimeType is the MIME type the document was exported as
	MimeType string `json:"mimeType"`

	// Content is the raw exported bytes
	Content []byte `json:"-"`
}

// exportMimeTypes maps supported export formats to Drive export MIME types.
var exportMimeTypes = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"odt":  "application/vnd.oasis.opendocument.text",
	"rtf":  "application/rtf",
	"txt":  "text/plain",
	"html": "text/html",
	"epub": "application/epub+zip",
}

// SupportedExportFormats returns the export formats accepted by
// ExportDocument, in a stable order.
func SupportedExportFormats() []string {
	return []string{"pdf", "docx", "odt", "rtf", "txt", "html", "epub"}
}

// ExportMimeType resolves an export format to its Drive MIME type.
// The second return value is false for unsupported formats.
func ExportMimeType(format string) (string, bool) {
	mime, ok := exportMimeTypes[format]
	return mime, ok
}

// ClampMaxResults clamps a requested page size into [MinMaxResults,
// MaxMaxResults]. Zero and negative values clamp to the minimum.
func ClampMaxResults(n int) int {
	if n < MinMaxResults {
		return MinMaxResults
	}
	if n > MaxMaxResults {
		return MaxMaxResults
	}
	return n
}
