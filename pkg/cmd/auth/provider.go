package auth

import (
	"crypto/tls"
	"net/http"

	"github.com/spf13/pflag"

	"github.com/edvaldo-gutierres/api-pwb/pkg/aad"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/options"
	"github.com/edvaldo-gutierres/api-pwb/pkg/config"
	"github.com/edvaldo-gutierres/api-pwb/pkg/powerbi"
)

// Provider builds an authenticated Power BI client from flags and environment.
type Provider interface {
	// AddFlags adds the credential flags to the given flag set.
	AddFlags(f *pflag.FlagSet)
	// Validate checks the credentials and constructs the client. It fails
	// before any network call when a credential field is missing.
	Validate() error
	// Client returns the Power BI client. Only valid after Validate.
	Client() powerbi.Client
}

// authArgs is an implementation of the Provider interface
type authArgs struct {
	clientID      string
	clientSecret  string
	tenantID      string
	authorityHost string
	envFile       string

	client     powerbi.Client
	httpClient *http.Client
}

// NewProvider returns a new authArgs
func NewProvider() Provider {
	return &authArgs{httpClient: defaultClient()}
}

func defaultClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	return &http.Client{Transport: transport}
}

// AddFlags adds the flags for this package to the specified FlagSet
func (a *authArgs) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&a.clientID, options.ClientID, "", "service principal application (client) ID (defaults to the APP_ID environment variable)")
	f.StringVar(&a.clientSecret, options.ClientSecret, "", "service principal client secret (defaults to the CLIENT_SECRET environment variable)")
	f.StringVar(&a.tenantID, options.TenantID, "", "AAD tenant ID (defaults to the TENANT_ID environment variable)")
	f.StringVar(&a.authorityHost, options.AuthorityHost, "", "AAD authority host (defaults to the Azure public cloud)")
	f.StringVar(&a.envFile, options.EnvFile, "", "load environment variables from this file before reading them")
}

// Validate validates the authArgs and constructs the Power BI client
func (a *authArgs) Validate() error {
	cfg, err := config.ParseConfig(a.envFile)
	if err != nil {
		return err
	}

	// flags take precedence over the environment
	if a.clientID != "" {
		cfg.ClientID = a.clientID
	}
	if a.clientSecret != "" {
		cfg.ClientSecret = a.clientSecret
	}
	if a.tenantID != "" {
		cfg.TenantID = a.tenantID
	}
	if a.authorityHost != "" {
		cfg.AuthorityHost = a.authorityHost
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tokens, err := aad.NewTokenRetriever(cfg.ClientID, cfg.ClientSecret, cfg.TenantID, cfg.AuthorityHost, cfg.Scope,
		aad.WithHTTPClient(a.httpClient))
	if err != nil {
		return err
	}
	a.client, err = powerbi.NewClient(tokens, powerbi.BaseURL(cfg.APIURL), powerbi.HTTPClient(a.httpClient))
	return err
}

// Client returns the Power BI client
func (a *authArgs) Client() powerbi.Client {
	return a.client
}
