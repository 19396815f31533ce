package powerbi

import (
	"context"

	"github.com/pkg/errors"
)

// Workspace is a Power BI workspace (group) as returned by the service. All
// documented fields pass through so that callers can do their own filtering.
type Workspace struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	IsReadOnly            bool   `json:"isReadOnly"`
	IsOnDedicatedCapacity bool   `json:"isOnDedicatedCapacity"`
	Type                  string `json:"type"`
}

func (c *powerBIClient) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var out struct {
		Value []Workspace `json:"value"`
	}
	if err := c.get(ctx, "/groups", nil, &out); err != nil {
		return nil, errors.Wrap(err, "failed to list workspaces")
	}
	return out.Value, nil
}
