package docs

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/oauth2"
	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DefaultRequestTimeout bounds every outbound Google API call. There is no
// automatic retry: a timed-out or failed call surfaces immediately and the
// caller decides whether to retry.
const DefaultRequestTimeout = 30 * time.Second

// Client wraps the Google Docs and Drive API services. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	docsService  *docs.Service
	driveService *drive.Service
	timeout      time.Duration
}

// NewClient creates a new adapter client authenticated with the given token
// source. Additional client options are applied to both services; tests use
// this to point the client at a fake backend.
func NewClient(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*Client, error) {
	httpClient := oauth2.NewClient(ctx, ts)
	allOpts := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)

	docsService, err := docs.NewService(ctx, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs service: %w", err)
	}

	driveService, err := drive.NewService(ctx, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		docsService:  docsService,
		driveService: driveService,
		timeout:      DefaultRequestTimeout,
	}, nil
}

// SetTimeout overrides the per-call request timeout. Intended for tests;
// production code keeps DefaultRequestTimeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// withTimeout bounds a single outbound call. Cancellation of the parent
// context aborts the request early.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// ListDocuments lists the user's Google Docs documents, most recently
// modified first. maxResults is clamped into [1,1000]; the listing is a
// single page, never paginated.
func (c *Client) ListDocuments(ctx context.Context, maxResults int) ([]*DocumentInfo, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("mimeType='%s' and trashed=false", DocsMimeType)

	fileList, err := c.driveService.Files.List().
		Context(ctx).
		Q(query).
		PageSize(int64(ClampMaxResults(maxResults))).
		OrderBy("modifiedTime desc").
		Fields("files(id, name, createdTime, modifiedTime, webViewLink, owners)").
		Do()
	if err != nil {
		return nil, classifyAPIError("list documents", err)
	}

	documents := make([]*DocumentInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		documents[i] = convertToDocumentInfo(f)
	}

	return documents, nil
}

// GetDocument retrieves the full structure of a document by ID. Tab content
// is included so tabbed documents come back complete, not just the legacy
// body.
func (c *Client) GetDocument(ctx context.Context, documentID string) (*docs.Document, error) {
	if documentID == "" {
		return nil, NewValidationError("document_id is required")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	doc, err := c.docsService.Documents.Get(documentID).
		IncludeTabsContent(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(fmt.Sprintf("get document %s", documentID), err)
	}

	return doc, nil
}

// CreateDocument creates a new empty document with the given title. The
// webViewLink is fetched from Drive; if that lookup fails the link is
// derived from the document ID instead of failing the whole call.
func (c *Client) CreateDocument(ctx context.Context, title string) (*DocumentInfo, error) {
	if title == "" {
		return nil, NewValidationError("title is required")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	doc, err := c.docsService.Documents.Create(&docs.Document{Title: title}).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(fmt.Sprintf("create document %q", title), err)
	}

	info := &DocumentInfo{
		ID:          doc.DocumentId,
		Name:        doc.Title,
		WebViewLink: DocumentWebViewLink(doc.DocumentId),
	}

	file, err := c.driveService.Files.Get(doc.DocumentId).
		Context(ctx).
		Fields("webViewLink").
		Do()
	if err == nil && file.WebViewLink != "" {
		info.WebViewLink = file.WebViewLink
	}

	return info, nil
}

// InsertText inserts text into a document at the given index (1 is the start
// of the body).
func (c *Client) InsertText(ctx context.Context, documentID, text string, index int64) error {
	if documentID == "" {
		return NewValidationError("document_id is required")
	}
	if text == "" {
		return NewValidationError("text is required")
	}
	if index < 1 {
		return NewValidationError("index must be >= 1, got %d", index)
	}

	request := &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: index},
			Text:     text,
		},
	}

	_, err := c.batchUpdate(ctx, documentID, request, fmt.Sprintf("insert text into document %s", documentID))
	return err
}

// ReplaceText replaces all occurrences of oldText with newText
// (case-insensitive) and returns the number of occurrences changed.
// Zero occurrences is a success, not an error.
func (c *Client) ReplaceText(ctx context.Context, documentID, oldText, newText string) (int64, error) {
	if documentID == "" {
		return 0, NewValidationError("document_id is required")
	}
	if oldText == "" {
		return 0, NewValidationError("old_text is required")
	}

	request := &docs.Request{
		ReplaceAllText: &docs.ReplaceAllTextRequest{
			ContainsText: &docs.SubstringMatchCriteria{
				Text:            oldText,
				MatchCase:       false,
				ForceSendFields: []string{"MatchCase"},
			},
			ReplaceText: newText,
		},
	}

	resp, err := c.batchUpdate(ctx, documentID, request, fmt.Sprintf("replace text in document %s", documentID))
	if err != nil {
		return 0, err
	}

	var occurrences int64
	if len(resp.Replies) > 0 && resp.Replies[0].ReplaceAllText != nil {
		occurrences = resp.Replies[0].ReplaceAllText.OccurrencesChanged
	}

	return occurrences, nil
}

// FormatText applies character formatting to the range [startIndex,
// endIndex). At least one formatting option must be provided; explicit false
// values clear the corresponding property.
func (c *Client) FormatText(ctx context.Context, documentID string, startIndex, endIndex int64, style TextStyleUpdate) ([]string, error) {
	if documentID == "" {
		return nil, NewValidationError("document_id is required")
	}
	if startIndex < 1 {
		return nil, NewValidationError("start_index must be >= 1, got %d", startIndex)
	}
	if startIndex >= endIndex {
		return nil, NewValidationError("start_index (%d) must be less than end_index (%d)", startIndex, endIndex)
	}
	if style.IsEmpty() {
		return nil, NewValidationError("at least one formatting option (bold, italic, underline) must be specified")
	}

	textStyle := &docs.TextStyle{}
	var fields []string
	var applied []string

	if style.Bold != nil {
		textStyle.Bold = *style.Bold
		textStyle.ForceSendFields = append(textStyle.ForceSendFields, "Bold")
		fields = append(fields, "bold")
		applied = append(applied, fmt.Sprintf("bold=%t", *style.Bold))
	}
	if style.Italic != nil {
		textStyle.Italic = *style.Italic
		textStyle.ForceSendFields = append(textStyle.ForceSendFields, "Italic")
		fields = append(fields, "italic")
		applied = append(applied, fmt.Sprintf("italic=%t", *style.Italic))
	}
	if style.Underline != nil {
		textStyle.Underline = *style.Underline
		textStyle.ForceSendFields = append(textStyle.ForceSendFields, "Underline")
		fields = append(fields, "underline")
		applied = append(applied, fmt.Sprintf("underline=%t", *style.Underline))
	}

	request := &docs.Request{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range: &docs.Range{
				StartIndex: startIndex,
				EndIndex:   endIndex,
			},
			TextStyle: textStyle,
			Fields:    strings.Join(fields, ","),
		},
	}

	if _, err := c.batchUpdate(ctx, documentID, request, fmt.Sprintf("format text in document %s", documentID)); err != nil {
		return nil, err
	}

	return applied, nil
}

// InsertImage inserts an inline image from a publicly accessible URL at the
// given index.
func (c *Client) InsertImage(ctx context.Context, documentID, imageURL string, index int64) error {
	if documentID == "" {
		return NewValidationError("document_id is required")
	}
	if imageURL == "" {
		return NewValidationError("image_url is required")
	}
	if index < 1 {
		return NewValidationError("index must be >= 1, got %d", index)
	}

	request := &docs.Request{
		InsertInlineImage: &docs.InsertInlineImageRequest{
			Location: &docs.Location{Index: index},
			Uri:      imageURL,
		},
	}

	_, err := c.batchUpdate(ctx, documentID, request, fmt.Sprintf("insert image into document %s", documentID))
	return err
}

// ExportDocument exports a document to the given format via the Drive API.
// Unsupported formats fail locally before any network call.
func (c *Client) ExportDocument(ctx context.Context, documentID, format string) (*ExportResult, error) {
	if documentID == "" {
		return nil, NewValidationError("document_id is required")
	}

	mimeType, ok := ExportMimeType(format)
	if !ok {
		return nil, NewValidationError("unsupported export format %q (supported: %s)",
			format, strings.Join(SupportedExportFormats(), ", "))
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.driveService.Files.Export(documentID, mimeType).
		Context(ctx).
		Download()
	if err != nil {
		return nil, classifyAPIError(fmt.Sprintf("export document %s as %s", documentID, format), err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Kind:    KindUpstream,
			Message: fmt.Sprintf("failed to read exported content for document %s", documentID),
			Err:     err,
		}
	}

	return &ExportResult{
		DocumentID: documentID,
		Format:     format,
		MimeType:   mimeType,
		Content:    content,
	}, nil
}

// TrashDocument moves a document to the Drive trash. It is a soft delete:
// the document stays recoverable until the trash is emptied.
func (c *Client) TrashDocument(ctx context.Context, documentID string) error {
	if documentID == "" {
		return NewValidationError("document_id is required")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.driveService.Files.Update(documentID, &drive.File{
		Trashed:         true,
		ForceSendFields: []string{"Trashed"},
	}).
		Context(ctx).
		Fields("id, trashed").
		Do()
	if err != nil {
		return classifyAPIError(fmt.Sprintf("delete document %s", documentID), err)
	}

	return nil
}

// batchUpdate sends a single-operation batchUpdate request.
func (c *Client) batchUpdate(ctx context.Context, documentID string, request *docs.Request, operation string) (*docs.BatchUpdateDocumentResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.docsService.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{request},
	}).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(operation, err)
	}

	return resp, nil
}

// DocumentWebViewLink derives the Docs editor URL for a document ID. Used as
// a fallback when Drive does not return a webViewLink.
func DocumentWebViewLink(documentID string) string {
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", documentID)
}

// convertToDocumentInfo converts a Drive API File to our DocumentInfo type.
func convertToDocumentInfo(f *drive.File) *DocumentInfo {
	info := &DocumentInfo{
		ID:           f.Id,
		Name:         f.Name,
		CreatedTime:  f.CreatedTime,
		ModifiedTime: f.ModifiedTime,
		WebViewLink:  f.WebViewLink,
	}

	for _, owner := range f.Owners {
		info.Owners = append(info.Owners, User{
			DisplayName:  owner.DisplayName,
			EmailAddress: owner.EmailAddress,
		})
	}

	return info
}
