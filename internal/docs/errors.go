package docs

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"

	"github.com/teemow/docs-mcp/internal/google"
)

// ErrorKind classifies adapter failures into a closed set of categories.
// Every error returned by the Client carries exactly one kind, so the tool
// layer can report failures uniformly without inspecting upstream details.
type ErrorKind string

const (
	// KindValidation covers parameters rejected before any network call
	KindValidation ErrorKind = "validation"

	// KindAuthentication covers HTTP 401: the token is missing, invalid or expired
	KindAuthentication ErrorKind = "authentication"

	// KindAuthorization covers HTTP 403: the token lacks a required scope
	KindAuthorization ErrorKind = "authorization"

	// KindNotFound covers HTTP 404: the document does not exist or is inaccessible
	KindNotFound ErrorKind = "not_found"

	// KindRateLimit covers HTTP 429 and quota-related 403 responses
	KindRateLimit ErrorKind = "rate_limit"

	// KindUpstream covers every other non-2xx response and transport failure
	KindUpstream ErrorKind = "upstream"
)

// Error is the adapter's error type. It wraps the underlying cause and
// carries a classification plus a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error that is reported without
// contacting the remote API.
func NewValidationError(format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the classification of err, or KindUpstream for errors that
// did not originate from this package.
func KindOf(err error) ErrorKind {
	var adapterErr *Error
	if errors.As(err, &adapterErr) {
		return adapterErr.Kind
	}
	return KindUpstream
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// 403 reasons that indicate throttling rather than a missing scope.
var rateLimitReasons = map[string]bool{
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
	"dailyLimitExceeded":    true,
	"quotaExceeded":         true,
}

// classifyAPIError maps an upstream API failure to an adapter Error.
// The operation name is included in the message for diagnosis.
func classifyAPIError(operation string, err error) *Error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return &Error{
			Kind:    KindUpstream,
			Message: fmt.Sprintf("failed to %s", operation),
			Err:     err,
		}
	}

	switch apiErr.Code {
	case 401:
		return &Error{
			Kind:    KindAuthentication,
			Message: fmt.Sprintf("failed to %s: access token is invalid or expired; obtain a fresh token and restart with %s set", operation, google.AccessTokenEnvVar),
			Err:     err,
		}
	case 403:
		for _, item := range apiErr.Errors {
			if rateLimitReasons[item.Reason] {
				return &Error{
					Kind:    KindRateLimit,
					Message: fmt.Sprintf("failed to %s: rate limited by the Google API; retry later", operation),
					Err:     err,
				}
			}
		}
		return &Error{
			Kind:    KindAuthorization,
			Message: fmt.Sprintf("failed to %s: access token lacks a required scope (needs one of: %s)", operation, google.RequiredScopesList()),
			Err:     err,
		}
	case 404:
		return &Error{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("failed to %s: document not found or not accessible", operation),
			Err:     err,
		}
	case 429:
		return &Error{
			Kind:    KindRateLimit,
			Message: fmt.Sprintf("failed to %s: rate limited by the Google API; retry later", operation),
			Err:     err,
		}
	default:
		return &Error{
			Kind:    KindUpstream,
			Message: fmt.Sprintf("failed to %s: Google API error %d", operation, apiErr.Code),
			Err:     err,
		}
	}
}
