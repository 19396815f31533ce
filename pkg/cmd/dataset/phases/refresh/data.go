package phases

import (
	"github.com/edvaldo-gutierres/api-pwb/pkg/output"
	"github.com/edvaldo-gutierres/api-pwb/pkg/powerbi"
)

// RefreshData is the interface to use for the refresh phases.
// The "refreshData" type from dataset/refresh.go must satisfy this interface.
type RefreshData interface {
	// WorkspaceID returns the ID of the workspace that contains the dataset.
	WorkspaceID() string

	// DatasetID returns the ID of the dataset to refresh.
	// This will return the resolved value if the dataset was looked up by name.
	DatasetID() string

	// SetDatasetID stores the dataset ID resolved from the dataset name.
	SetDatasetID(id string)

	// DatasetName returns the display name of the dataset to refresh.
	DatasetName() string

	// MyWorkspace returns true when the dataset lives in the caller's
	// personal workspace instead of a group workspace.
	MyWorkspace() bool

	// OutputFormat returns the format to render the result in.
	OutputFormat() output.Format

	// PowerBIClient returns the Power BI REST client.
	PowerBIClient() powerbi.Client
}
