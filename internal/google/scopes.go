package google

import "strings"

// RequiredScopes are the Google OAuth scopes the access token must carry for
// full functionality. They are not requested by this server (token acquisition
// is out of scope) but are named in authorization error messages so operators
// know what to grant.
//
// The scopes provide access to:
//   - Google Docs: read and write document content
//   - Google Drive: list, export and trash files
var RequiredScopes = []string{
	"https://www.googleapis.com/auth/documents",
	"https://www.googleapis.com/auth/drive",
}

// RequiredScopesList returns the required scopes as a comma-separated string
// for use in error messages.
func RequiredScopesList() string {
	return strings.Join(RequiredScopes, ", ")
}
