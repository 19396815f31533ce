package phases

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/edvaldo-gutierres/api-pwb/pkg/powerbi"
	"github.com/edvaldo-gutierres/api-pwb/pkg/powerbi/mock_powerbi"
)

func TestTriggerPreRun(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		errorMsg string
	}{
		{
			name:     "invalid data type",
			data:     "test",
			errorMsg: "invalid data type string",
		},
		{
			name:     "missing --dataset-id or --dataset-name",
			data:     &mockRefreshData{workspaceID: "workspace-id"},
			errorMsg: "--dataset-id or --dataset-name is required",
		},
		{
			name:     "missing --workspace-id",
			data:     &mockRefreshData{datasetID: "dataset-id"},
			errorMsg: "--workspace-id is required",
		},
		{
			name: "valid data",
			data: &mockRefreshData{workspaceID: "workspace-id", datasetID: "dataset-id"},
		},
		{
			name: "valid data in my workspace",
			data: &mockRefreshData{datasetID: "dataset-id", myWorkspace: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := NewTriggerPhase().PreRun(test.data)
			if err == nil {
				if test.errorMsg != "" {
					t.Errorf("expected error but got nil")
				}
			} else if err.Error() != test.errorMsg {
				t.Errorf("expected error message: %s, but got: %s", test.errorMsg, err.Error())
			}
		})
	}
}

func TestTriggerRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phase := NewTriggerPhase()

	t.Run("accepted", func(t *testing.T) {
		data := &mockRefreshData{workspaceID: "workspace-id", datasetID: "dataset-id"}

		mockClient := mock_powerbi.NewMockClient(ctrl)
		mockClient.EXPECT().RefreshDataset(context.Background(), "workspace-id", "dataset-id").Return(&powerbi.RefreshOutcome{
			Status:     powerbi.RefreshAccepted,
			StatusCode: http.StatusAccepted,
			RequestID:  "request-id",
		}, nil)
		data.powerbiClient = mockClient

		if err := phase.Run(context.Background(), data); err != nil {
			t.Errorf("expected no error but got: %s", err.Error())
		}
	})

	t.Run("accepted in my workspace", func(t *testing.T) {
		data := &mockRefreshData{datasetID: "dataset-id", myWorkspace: true}

		mockClient := mock_powerbi.NewMockClient(ctrl)
		mockClient.EXPECT().RefreshDatasetInMyWorkspace(context.Background(), "dataset-id").Return(&powerbi.RefreshOutcome{
			Status:     powerbi.RefreshAccepted,
			StatusCode: http.StatusAccepted,
			RequestID:  "request-id",
		}, nil)
		data.powerbiClient = mockClient

		if err := phase.Run(context.Background(), data); err != nil {
			t.Errorf("expected no error but got: %s", err.Error())
		}
	})

	t.Run("rejected", func(t *testing.T) {
		data := &mockRefreshData{workspaceID: "workspace-id", datasetID: "dataset-id"}

		mockClient := mock_powerbi.NewMockClient(ctrl)
		mockClient.EXPECT().RefreshDataset(context.Background(), "workspace-id", "dataset-id").Return(&powerbi.RefreshOutcome{
			Status:     powerbi.RefreshRejected,
			StatusCode: http.StatusTooManyRequests,
			Detail:     `{"error":{"code":"TooManyRequests"}}`,
		}, nil)
		data.powerbiClient = mockClient

		err := phase.Run(context.Background(), data)
		if err == nil {
			t.Fatal("expected error but got nil")
		}
		if !strings.Contains(err.Error(), "refresh rejected with status 429") {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("no dataset ID", func(t *testing.T) {
		data := &mockRefreshData{workspaceID: "workspace-id", datasetName: "Sales"}
		data.powerbiClient = mock_powerbi.NewMockClient(ctrl)

		err := phase.Run(context.Background(), data)
		if err == nil {
			t.Fatal("expected error but got nil")
		}
		if !strings.Contains(err.Error(), "no dataset ID to refresh") {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})
}
