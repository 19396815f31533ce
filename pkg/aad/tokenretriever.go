package aad

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/confidential"
	"github.com/pkg/errors"
)

const (
	// DefaultAuthorityHost is the AAD endpoint for the Azure public cloud.
	DefaultAuthorityHost = "https://login.microsoftonline.com/"
	// DefaultScope is the default Power BI REST API scope.
	DefaultScope = "https://analysis.windows.net/powerbi/api/.default"
)

// TokenRetriever acquires Power BI access tokens for a service principal
// using the client credentials grant.
type TokenRetriever struct {
	app    confidential.Client
	scopes []string
}

// Option customizes the token retriever.
type Option func(*retrieverOptions)

type retrieverOptions struct {
	httpClient *http.Client
}

// WithHTTPClient sets the http client used for requests to the identity provider.
func WithHTTPClient(client *http.Client) Option {
	return func(o *retrieverOptions) {
		o.httpClient = client
	}
}

// NewTokenRetriever returns a token retriever for the given service principal.
// Every credential field must be set. Validation happens here so that a
// misconfigured invocation fails before any network call is made.
func NewTokenRetriever(clientID, clientSecret, tenantID, authorityHost, scope string, opts ...Option) (*TokenRetriever, error) {
	if clientID == "" {
		return nil, errors.New("client ID must not be empty")
	}
	if clientSecret == "" {
		return nil, errors.New("client secret must not be empty")
	}
	if tenantID == "" {
		return nil, errors.New("tenant ID must not be empty")
	}
	if authorityHost == "" {
		authorityHost = DefaultAuthorityHost
	}
	if scope == "" {
		scope = DefaultScope
	}

	o := &retrieverOptions{}
	for _, opt := range opts {
		opt(o)
	}

	cred, err := confidential.NewCredFromSecret(clientSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create credential from secret")
	}
	authority, err := url.JoinPath(authorityHost, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to construct authority URL")
	}

	msalOpts := []confidential.Option{}
	if o.httpClient != nil {
		msalOpts = append(msalOpts, confidential.WithHTTPClient(o.httpClient))
	}
	app, err := confidential.New(authority, clientID, cred, msalOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create confidential client app")
	}

	return &TokenRetriever{
		app:    app,
		scopes: []string{scope},
	}, nil
}

// AccessToken acquires a bearer access token from the identity provider. A
// fresh token is requested on every invocation of the binary, expiry is not
// tracked here.
func (tr *TokenRetriever) AccessToken(ctx context.Context) (string, error) {
	result, err := tr.app.AcquireTokenByCredential(ctx, tr.scopes)
	if err != nil {
		return "", &AuthenticationError{Description: err.Error()}
	}
	if result.AccessToken == "" {
		return "", &AuthenticationError{Description: "unknown"}
	}
	return result.AccessToken, nil
}
