package powerbi

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Dataset is a Power BI dataset as returned by the service.
type Dataset struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	WebURL            string `json:"webUrl"`
	IsRefreshable     bool   `json:"isRefreshable"`
	ConfiguredBy      string `json:"configuredBy"`
	AddRowsAPIEnabled bool   `json:"addRowsAPIEnabled"`
}

func (c *powerBIClient) ListDatasets(ctx context.Context, groupID string) ([]Dataset, error) {
	if groupID == "" {
		return nil, errors.New("group ID must not be empty")
	}

	var out struct {
		Value []Dataset `json:"value"`
	}
	if err := c.get(ctx, fmt.Sprintf("/groups/%s/datasets", groupID), nil, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to list datasets in workspace %s", groupID)
	}
	return out.Value, nil
}
