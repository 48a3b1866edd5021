package google

import (
	"strings"
	"testing"
)

func TestNewCredentials(t *testing.T) {
	creds, err := NewCredentials("ya29.test-token")
	if err != nil {
		t.Fatalf("NewCredentials returned error: %v", err)
	}

	token, err := creds.TokenSource().Token()
	if err != nil {
		t.Fatalf("TokenSource().Token() returned error: %v", err)
	}
	if token.AccessToken != "ya29.test-token" {
		t.Errorf("Expected access token ya29.test-token, got %s", token.AccessToken)
	}
	if token.TokenType != "Bearer" {
		t.Errorf("Expected token type Bearer, got %s", token.TokenType)
	}
}

func TestNewCredentials_Empty(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "whitespace only", token: "   \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCredentials(tt.token); err == nil {
				t.Error("Expected error for empty token, got nil")
			}
		})
	}
}

func TestNewCredentials_TrimsWhitespace(t *testing.T) {
	creds, err := NewCredentials("  token-with-spaces  ")
	if err != nil {
		t.Fatalf("NewCredentials returned error: %v", err)
	}

	token, _ := creds.TokenSource().Token()
	if token.AccessToken != "token-with-spaces" {
		t.Errorf("Expected trimmed token, got %q", token.AccessToken)
	}
}

func TestLoadCredentials_Missing(t *testing.T) {
	t.Setenv(AccessTokenEnvVar, "")

	_, err := LoadCredentials()
	if err == nil {
		t.Fatal("Expected error when token env var is unset")
	}
	if !strings.Contains(err.Error(), AccessTokenEnvVar) {
		t.Errorf("Expected error to name %s, got: %v", AccessTokenEnvVar, err)
	}
}

func TestLoadCredentials_Present(t *testing.T) {
	t.Setenv(AccessTokenEnvVar, "ya29.from-env")

	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials returned error: %v", err)
	}
	token, _ := creds.TokenSource().Token()
	if token.AccessToken != "ya29.from-env" {
		t.Errorf("Expected token from environment, got %s", token.AccessToken)
	}
}

func TestRequiredScopesList(t *testing.T) {
	list := RequiredScopesList()
	for _, scope := range RequiredScopes {
		if !strings.Contains(list, scope) {
			t.Errorf("Expected scope list to contain %s", scope)
		}
	}
}
