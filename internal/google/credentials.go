package google

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
)

// AccessTokenEnvVar is the environment variable holding the pre-obtained
// OAuth access token. The server refuses to start without it.
const AccessTokenEnvVar = "GOOGLE_ACCESS_TOKEN"

// Credentials holds the access token for Google API calls. It is constructed
// once at startup and never mutated afterwards.
type Credentials struct {
	accessToken string
}

// NewCredentials creates Credentials from an access token string.
func NewCredentials(accessToken string) (*Credentials, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, fmt.Errorf("access token is empty")
	}
	return &Credentials{accessToken: accessToken}, nil
}

// LoadCredentials reads the access token from the environment.
// A missing or empty token is a fatal startup condition for the caller.
func LoadCredentials() (*Credentials, error) {
	token := os.Getenv(AccessTokenEnvVar)
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf(
			"missing %s environment variable; obtain an OAuth access token with the required scopes and export it before starting the server",
			AccessTokenEnvVar)
	}
	return NewCredentials(token)
}

// TokenSource returns an oauth2 token source for the stored access token.
// The token is static: no refresh is attempted when it expires.
func (c *Credentials) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: c.accessToken,
		TokenType:   "Bearer",
	})
}
