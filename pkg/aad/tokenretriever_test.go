package aad

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

const testTenantID = "72f988bf-86f1-41af-91ab-2d7cd011db47"

// fakeAADTransport serves canned AAD discovery and token endpoint responses so
// that no real network call is made during token acquisition.
type fakeAADTransport struct {
	tokenStatus int
	tokenBody   string
	tokenCalls  int
}

func (f *fakeAADTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	path := req.URL.Path
	var status int
	var body string
	switch {
	case strings.Contains(path, "/discovery/instance"):
		status = http.StatusOK
		body = fmt.Sprintf(`{
			"tenant_discovery_endpoint": "https://login.microsoftonline.com/%[1]s/v2.0/.well-known/openid-configuration",
			"api-version": "1.1",
			"metadata": [{
				"preferred_network": "login.microsoftonline.com",
				"preferred_cache": "login.windows.net",
				"aliases": ["login.microsoftonline.com", "login.windows.net"]
			}]
		}`, testTenantID)
	case strings.Contains(path, ".well-known/openid-configuration"):
		status = http.StatusOK
		body = fmt.Sprintf(`{
			"token_endpoint": "https://login.microsoftonline.com/%[1]s/oauth2/v2.0/token",
			"authorization_endpoint": "https://login.microsoftonline.com/%[1]s/oauth2/v2.0/authorize",
			"issuer": "https://login.microsoftonline.com/%[1]s/v2.0"
		}`, testTenantID)
	case strings.HasSuffix(path, "/oauth2/v2.0/token"):
		f.tokenCalls++
		status = f.tokenStatus
		body = f.tokenBody
	default:
		status = http.StatusNotFound
		body = `{"error": "not_found"}`
	}

	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func newTestRetriever(t *testing.T, transport *fakeAADTransport) *TokenRetriever {
	t.Helper()
	tr, err := NewTokenRetriever("client-id", "client-secret", testTenantID, "", "",
		WithHTTPClient(&http.Client{Transport: transport}))
	if err != nil {
		t.Fatalf("NewTokenRetriever() error = %v", err)
	}
	return tr
}

func TestAccessToken(t *testing.T) {
	transport := &fakeAADTransport{
		tokenStatus: http.StatusOK,
		tokenBody:   `{"access_token": "fake-access-token", "token_type": "Bearer", "expires_in": 3599}`,
	}
	tr := newTestRetriever(t, transport)

	token, err := tr.AccessToken(context.Background())
	if err != nil {
		t.Fatalf("AccessToken() error = %v", err)
	}
	if token != "fake-access-token" {
		t.Errorf("AccessToken() = %q, want %q", token, "fake-access-token")
	}
	if transport.tokenCalls != 1 {
		t.Errorf("expected 1 token request, got %d", transport.tokenCalls)
	}
}

func TestAccessTokenProviderError(t *testing.T) {
	transport := &fakeAADTransport{
		tokenStatus: http.StatusUnauthorized,
		tokenBody:   `{"error": "invalid_client", "error_description": "AADSTS7000215: Invalid client secret provided."}`,
	}
	tr := newTestRetriever(t, transport)

	_, err := tr.AccessToken(context.Background())
	if err == nil {
		t.Fatal("AccessToken() expected error, got nil")
	}
	if !IsAuthenticationError(err) {
		t.Fatalf("AccessToken() error = %T, want *AuthenticationError", err)
	}
	if !strings.Contains(err.Error(), "invalid_client") {
		t.Errorf("expected error to carry the provider's error description, got %q", err.Error())
	}
}

func TestAccessTokenMissingAccessTokenField(t *testing.T) {
	transport := &fakeAADTransport{
		tokenStatus: http.StatusOK,
		tokenBody:   `{"token_type": "Bearer", "expires_in": 3599}`,
	}
	tr := newTestRetriever(t, transport)

	_, err := tr.AccessToken(context.Background())
	if err == nil {
		t.Fatal("AccessToken() expected error, got nil")
	}
	if !IsAuthenticationError(err) {
		t.Fatalf("AccessToken() error = %T, want *AuthenticationError", err)
	}
}

func TestNewTokenRetrieverValidation(t *testing.T) {
	tests := []struct {
		name         string
		clientID     string
		clientSecret string
		tenantID     string
		errorMsg     string
	}{
		{
			name:         "missing client id",
			clientSecret: "secret",
			tenantID:     testTenantID,
			errorMsg:     "client ID must not be empty",
		},
		{
			name:     "missing client secret",
			clientID: "client-id",
			tenantID: testTenantID,
			errorMsg: "client secret must not be empty",
		},
		{
			name:         "missing tenant id",
			clientID:     "client-id",
			clientSecret: "secret",
			errorMsg:     "tenant ID must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &fakeAADTransport{}
			_, err := NewTokenRetriever(tt.clientID, tt.clientSecret, tt.tenantID, "", "",
				WithHTTPClient(&http.Client{Transport: transport}))
			if err == nil {
				t.Fatal("NewTokenRetriever() expected error, got nil")
			}
			if err.Error() != tt.errorMsg {
				t.Errorf("NewTokenRetriever() error = %q, want %q", err.Error(), tt.errorMsg)
			}
			if transport.tokenCalls != 0 {
				t.Errorf("expected no network call, got %d token requests", transport.tokenCalls)
			}
		})
	}
}

func TestIsAuthenticationError(t *testing.T) {
	if IsAuthenticationError(fmt.Errorf("some other error")) {
		t.Error("IsAuthenticationError() = true for unrelated error")
	}
	if !IsAuthenticationError(&AuthenticationError{Description: "unknown"}) {
		t.Error("IsAuthenticationError() = false for AuthenticationError")
	}
}
