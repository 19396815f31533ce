package powerbi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// RefreshStatus says whether the service accepted an asynchronous refresh job.
type RefreshStatus string

const (
	// RefreshAccepted means the service queued the refresh job. Acceptance
	// does not imply completion.
	RefreshAccepted RefreshStatus = "Accepted"
	// RefreshRejected means the service turned the request down.
	RefreshRejected RefreshStatus = "Rejected"
)

// RefreshOutcome is the result of a refresh trigger.
type RefreshOutcome struct {
	Status     RefreshStatus
	StatusCode int
	// RequestID is the service side identifier of the request, when present.
	RequestID string
	// Detail carries the literal response body for rejected requests.
	Detail string
}

// Accepted reports whether the refresh job was accepted for processing.
func (o *RefreshOutcome) Accepted() bool {
	return o.Status == RefreshAccepted
}

// Refresh is one entry of a dataset's refresh history. Timestamps stay in the
// service's ISO 8601 representation.
type Refresh struct {
	RequestID            string `json:"requestId"`
	RefreshType          string `json:"refreshType"`
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	Status               string `json:"status"`
	ServiceExceptionJSON string `json:"serviceExceptionJson"`
}

func (c *powerBIClient) RefreshDataset(ctx context.Context, groupID, datasetID string) (*RefreshOutcome, error) {
	if groupID == "" {
		return nil, errors.New("group ID must not be empty")
	}
	if datasetID == "" {
		return nil, errors.New("dataset ID must not be empty")
	}
	return c.postRefresh(ctx, fmt.Sprintf("/groups/%s/datasets/%s/refreshes", groupID, datasetID))
}

func (c *powerBIClient) RefreshDatasetInMyWorkspace(ctx context.Context, datasetID string) (*RefreshOutcome, error) {
	if datasetID == "" {
		return nil, errors.New("dataset ID must not be empty")
	}
	return c.postRefresh(ctx, fmt.Sprintf("/datasets/%s/refreshes", datasetID))
}

// postRefresh fires the refresh POST. The request carries no body and the
// outcome mirrors the service's answer: 202 means the job was queued, anything
// else is a rejection with the response body passed through as diagnostic
// text. Rejection is not a Go error, the caller decides whether to continue.
func (c *powerBIClient) postRefresh(ctx context.Context, path string) (*RefreshOutcome, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	outcome := &RefreshOutcome{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(requestIDHeader),
	}
	if resp.StatusCode == http.StatusAccepted {
		outcome.Status = RefreshAccepted
		return outcome, nil
	}
	outcome.Status = RefreshRejected
	outcome.Detail = string(body)
	return outcome, nil
}

func (c *powerBIClient) GetRefreshHistory(ctx context.Context, groupID, datasetID string, top int) ([]Refresh, error) {
	if groupID == "" {
		return nil, errors.New("group ID must not be empty")
	}
	if datasetID == "" {
		return nil, errors.New("dataset ID must not be empty")
	}

	var query url.Values
	if top > 0 {
		query = url.Values{"$top": []string{strconv.Itoa(top)}}
	}

	var out struct {
		Value []Refresh `json:"value"`
	}
	if err := c.get(ctx, fmt.Sprintf("/groups/%s/datasets/%s/refreshes", groupID, datasetID), query, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to get refresh history of dataset %s", datasetID)
	}
	return out.Value, nil
}
