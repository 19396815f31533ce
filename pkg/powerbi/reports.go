package powerbi

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Report is a Power BI report as returned by the service.
type Report struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	WebURL    string `json:"webUrl"`
	EmbedURL  string `json:"embedUrl"`
	DatasetID string `json:"datasetId"`
}

func (c *powerBIClient) ListReports(ctx context.Context, groupID string) ([]Report, error) {
	if groupID == "" {
		return nil, errors.New("group ID must not be empty")
	}

	var out struct {
		Value []Report `json:"value"`
	}
	if err := c.get(ctx, fmt.Sprintf("/groups/%s/reports", groupID), nil, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to list reports in workspace %s", groupID)
	}
	return out.Value, nil
}
