package powerbi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/edvaldo-gutierres/api-pwb/pkg/version"
)

// DefaultBaseURL is the Power BI REST API endpoint for the caller's organization.
const DefaultBaseURL = "https://api.powerbi.com/v1.0/myorg"

// TokenProvider supplies a bearer access token for each request.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is the interface for the Power BI REST API client.
type Client interface {
	// ListWorkspaces returns the workspaces the service principal has access to.
	ListWorkspaces(ctx context.Context) ([]Workspace, error)

	// ListDatasets returns the datasets in the given workspace.
	ListDatasets(ctx context.Context, groupID string) ([]Dataset, error)

	// ListReports returns the reports in the given workspace.
	ListReports(ctx context.Context, groupID string) ([]Report, error)

	// RefreshDataset asks the service to queue a refresh of the given dataset.
	// The outcome says whether the job was accepted, not whether it completed.
	RefreshDataset(ctx context.Context, groupID, datasetID string) (*RefreshOutcome, error)

	// RefreshDatasetInMyWorkspace is RefreshDataset for a dataset that lives in
	// the service principal's own workspace.
	RefreshDatasetInMyWorkspace(ctx context.Context, datasetID string) (*RefreshOutcome, error)

	// GetRefreshHistory returns the most recent refresh history entries of the
	// given dataset, newest first. top limits the number of entries when > 0.
	GetRefreshHistory(ctx context.Context, groupID, datasetID string, top int) ([]Refresh, error)
}

//go:generate sh -c "mockgen -destination=mock_powerbi/client.go -package=mock_powerbi github.com/edvaldo-gutierres/api-pwb/pkg/powerbi Client"

type powerBIClient struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
}

// NewClient creates a REST client for the Power BI API. Every request carries
// a bearer token from the given token provider.
func NewClient(tokens TokenProvider, opts ...Option) (Client, error) {
	if tokens == nil {
		return nil, errors.New("token provider must not be nil")
	}

	c := &powerBIClient{
		baseURL: DefaultBaseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimSuffix(c.baseURL, "/")
	return c, nil
}

// Option can be passed to NewClient and customizes the created client instance.
type Option func(*powerBIClient)

// BaseURL overrides the API endpoint the client talks to.
func BaseURL(baseURL string) Option {
	return func(c *powerBIClient) {
		c.baseURL = baseURL
	}
}

// HTTPClient overrides the http client used for requests.
func HTTPClient(client *http.Client) Option {
	return func(c *powerBIClient) {
		c.httpClient = client
	}
}

func (c *powerBIClient) newRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", version.GetUserAgent())
	return req, nil
}

// get issues a GET request and decodes the 200 response body into out. Any
// other status is surfaced as an APIError carrying the literal response body.
func (c *powerBIClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			RequestID:  resp.Header.Get(requestIDHeader),
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to unmarshal response")
	}
	return nil
}
