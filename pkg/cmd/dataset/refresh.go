package dataset

import (
	"github.com/spf13/cobra"

	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/auth"
	phases "github.com/edvaldo-gutierres/api-pwb/pkg/cmd/dataset/phases/refresh"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/dataset/phases/workflow"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/options"
	"github.com/edvaldo-gutierres/api-pwb/pkg/output"
	"github.com/edvaldo-gutierres/api-pwb/pkg/powerbi"
)

func newRefreshCmd(authProvider auth.Provider) *cobra.Command {
	refreshRunner := workflow.NewPhaseRunner()
	data := &refreshData{
		authProvider: authProvider,
	}

	cmd := &cobra.Command{
		Use: "refresh",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(data.rawOutputFormat)
			if err != nil {
				return err
			}
			data.outputFormat = format
			return authProvider.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return refreshRunner.Run(data)
		},
	}

	// persistent so that the phase subcommands see the credential flags too
	authProvider.AddFlags(cmd.PersistentFlags())

	f := cmd.Flags()
	f.StringVar(&data.workspaceID, options.WorkspaceID, "", "ID of the workspace (group) that contains the dataset")
	f.StringVar(&data.datasetID, options.DatasetID, "", "ID of the dataset to refresh")
	f.StringVar(&data.datasetName, options.DatasetName, "", "Display name of the dataset to refresh. Resolved to an ID before triggering")
	f.BoolVar(&data.myWorkspace, options.MyWorkspace, false, "Refresh a dataset in the caller's personal workspace instead of a group workspace")
	f.StringVar(&data.rawOutputFormat, options.Output, string(output.FormatTable), "Output format. One of: table|json")

	// append phases in order
	refreshRunner.AppendPhases(
		phases.NewResolvePhase(),
		phases.NewTriggerPhase(),
	)
	refreshRunner.BindToCommand(cmd, data)

	return cmd
}

// refreshData is an implementation of phases.RefreshData in
// pkg/cmd/dataset/phases/refresh/data.go
type refreshData struct {
	workspaceID     string
	datasetID       string
	datasetName     string
	myWorkspace     bool
	rawOutputFormat string
	outputFormat    output.Format
	authProvider    auth.Provider
}

var _ phases.RefreshData = &refreshData{}

// WorkspaceID returns the ID of the workspace that contains the dataset.
func (r *refreshData) WorkspaceID() string {
	return r.workspaceID
}

// DatasetID returns the ID of the dataset to refresh.
func (r *refreshData) DatasetID() string {
	return r.datasetID
}

// SetDatasetID stores the dataset ID resolved from the dataset name.
func (r *refreshData) SetDatasetID(id string) {
	r.datasetID = id
}

// DatasetName returns the display name of the dataset to refresh.
func (r *refreshData) DatasetName() string {
	return r.datasetName
}

// MyWorkspace returns true when the dataset lives in the caller's personal workspace.
func (r *refreshData) MyWorkspace() bool {
	return r.myWorkspace
}

// OutputFormat returns the format to render the result in.
func (r *refreshData) OutputFormat() output.Format {
	return r.outputFormat
}

// PowerBIClient returns the Power BI REST client.
func (r *refreshData) PowerBIClient() powerbi.Client {
	return r.authProvider.Client()
}
