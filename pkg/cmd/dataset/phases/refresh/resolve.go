package phases

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/dataset/phases/workflow"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/options"
)

const (
	resolvePhaseName = "resolve-dataset"
)

type resolvePhase struct {
}

// NewResolvePhase creates a new phase to resolve the dataset to refresh
func NewResolvePhase() workflow.Phase {
	p := &resolvePhase{}
	return workflow.Phase{
		Name:        resolvePhaseName,
		Aliases:     []string{"resolve"},
		Description: "Resolve the target dataset ID, looking it up by display name when needed",
		PreRun:      p.prerun,
		Run:         p.run,
		Flags:       []string{options.WorkspaceID, options.DatasetID, options.DatasetName, options.MyWorkspace},
	}
}

func (p *resolvePhase) prerun(data workflow.RunData) error {
	refreshData, ok := data.(RefreshData)
	if !ok {
		return errors.Errorf("invalid data type %T", data)
	}

	if refreshData.DatasetID() == "" && refreshData.DatasetName() == "" {
		return options.OneOfFlagsIsRequiredError(options.DatasetID, options.DatasetName)
	}
	if refreshData.MyWorkspace() {
		// datasets in the personal workspace cannot be listed, so a name
		// lookup is not possible there
		if refreshData.DatasetID() == "" {
			return options.FlagIsRequiredError(options.DatasetID)
		}
		return nil
	}
	if refreshData.WorkspaceID() == "" {
		return options.FlagIsRequiredError(options.WorkspaceID)
	}

	return nil
}

func (p *resolvePhase) run(ctx context.Context, data workflow.RunData) error {
	refreshData := data.(RefreshData)

	if refreshData.DatasetID() != "" {
		log.WithField("datasetID", refreshData.DatasetID()).Debugf("[%s] dataset ID provided, skipping lookup", resolvePhaseName)
		return nil
	}

	datasets, err := refreshData.PowerBIClient().ListDatasets(ctx, refreshData.WorkspaceID())
	if err != nil {
		return errors.Wrap(err, "failed to list datasets")
	}
	for _, dataset := range datasets {
		if dataset.Name == refreshData.DatasetName() {
			refreshData.SetDatasetID(dataset.ID)
			log.WithFields(log.Fields{
				"name":      dataset.Name,
				"datasetID": dataset.ID,
			}).Infof("[%s] resolved dataset", resolvePhaseName)
			return nil
		}
	}

	return errors.Errorf("dataset %q not found in workspace %s", refreshData.DatasetName(), refreshData.WorkspaceID())
}
