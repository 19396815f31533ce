package phases

import (
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/dataset/phases/workflow"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/options"
	"github.com/edvaldo-gutierres/api-pwb/pkg/output"
	"github.com/edvaldo-gutierres/api-pwb/pkg/powerbi"
)

const (
	triggerPhaseName = "trigger-refresh"
)

type triggerPhase struct {
}

// NewTriggerPhase creates a new phase to trigger the dataset refresh
func NewTriggerPhase() workflow.Phase {
	p := &triggerPhase{}
	return workflow.Phase{
		Name:        triggerPhaseName,
		Aliases:     []string{"trigger"},
		Description: "Ask the Power BI service to enqueue a refresh of the dataset",
		PreRun:      p.prerun,
		Run:         p.run,
		Flags:       []string{options.WorkspaceID, options.DatasetID, options.MyWorkspace, options.Output},
	}
}

func (p *triggerPhase) prerun(data workflow.RunData) error {
	refreshData, ok := data.(RefreshData)
	if !ok {
		return errors.Errorf("invalid data type %T", data)
	}

	// the resolve phase fills in the dataset ID when only the name is given
	if refreshData.DatasetID() == "" && refreshData.DatasetName() == "" {
		return options.OneOfFlagsIsRequiredError(options.DatasetID, options.DatasetName)
	}
	if !refreshData.MyWorkspace() && refreshData.WorkspaceID() == "" {
		return options.FlagIsRequiredError(options.WorkspaceID)
	}

	return nil
}

func (p *triggerPhase) run(ctx context.Context, data workflow.RunData) error {
	refreshData := data.(RefreshData)

	if refreshData.DatasetID() == "" {
		return errors.New("no dataset ID to refresh, did the resolve phase run?")
	}

	var outcome *powerbi.RefreshOutcome
	var err error
	if refreshData.MyWorkspace() {
		outcome, err = refreshData.PowerBIClient().RefreshDatasetInMyWorkspace(ctx, refreshData.DatasetID())
	} else {
		outcome, err = refreshData.PowerBIClient().RefreshDataset(ctx, refreshData.WorkspaceID(), refreshData.DatasetID())
	}
	if err != nil {
		return errors.Wrap(err, "failed to request dataset refresh")
	}

	if refreshData.OutputFormat() == output.FormatJSON {
		if jsonErr := output.JSON(os.Stdout, outcome); jsonErr != nil {
			return jsonErr
		}
	}

	if !outcome.Accepted() {
		output.Failuref(os.Stderr, "refresh of dataset %s was rejected with status %d: %s", refreshData.DatasetID(), outcome.StatusCode, outcome.Detail)
		return errors.Errorf("refresh rejected with status %d", outcome.StatusCode)
	}

	log.WithFields(log.Fields{
		"datasetID": refreshData.DatasetID(),
		"requestID": outcome.RequestID,
	}).Debugf("[%s] refresh accepted", triggerPhaseName)
	output.Successf(os.Stdout, "refresh of dataset %s accepted (request id %s)", refreshData.DatasetID(), outcome.RequestID)

	return nil
}
