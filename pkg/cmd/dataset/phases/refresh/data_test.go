package phases

import (
	"github.com/edvaldo-gutierres/api-pwb/pkg/output"
	"github.com/edvaldo-gutierres/api-pwb/pkg/powerbi"
)

// mockRefreshData is a simple implementation of RefreshData for tests.
type mockRefreshData struct {
	workspaceID   string
	datasetID     string
	datasetName   string
	myWorkspace   bool
	outputFormat  output.Format
	powerbiClient powerbi.Client
}

var _ RefreshData = &mockRefreshData{}

func (m *mockRefreshData) WorkspaceID() string {
	return m.workspaceID
}

func (m *mockRefreshData) DatasetID() string {
	return m.datasetID
}

func (m *mockRefreshData) SetDatasetID(id string) {
	m.datasetID = id
}

func (m *mockRefreshData) DatasetName() string {
	return m.datasetName
}

func (m *mockRefreshData) MyWorkspace() bool {
	return m.myWorkspace
}

func (m *mockRefreshData) OutputFormat() output.Format {
	if m.outputFormat == "" {
		return output.FormatTable
	}
	return m.outputFormat
}

func (m *mockRefreshData) PowerBIClient() powerbi.Client {
	return m.powerbiClient
}
