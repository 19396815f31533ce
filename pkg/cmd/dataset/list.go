package dataset

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/auth"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/options"
	"github.com/edvaldo-gutierres/api-pwb/pkg/output"
)

type listCmd struct {
	workspaceID     string
	rawOutputFormat string
	outputFormat    output.Format
	authProvider    auth.Provider
}

func newListCmd(authProvider auth.Provider) *cobra.Command {
	lc := &listCmd{
		authProvider: authProvider,
	}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List the datasets in a workspace",
		Aliases: []string{"ls"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return lc.prerun()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return lc.run()
		},
	}

	authProvider.AddFlags(cmd.Flags())
	f := cmd.Flags()
	f.StringVar(&lc.workspaceID, options.WorkspaceID, "", "ID of the workspace (group) to list datasets from")
	f.StringVar(&lc.rawOutputFormat, options.Output, string(output.FormatTable), "Output format. One of: table|json")

	return cmd
}

func (lc *listCmd) prerun() error {
	if lc.workspaceID == "" {
		return options.FlagIsRequiredError(options.WorkspaceID)
	}
	format, err := output.ParseFormat(lc.rawOutputFormat)
	if err != nil {
		return err
	}
	lc.outputFormat = format
	return lc.authProvider.Validate()
}

func (lc *listCmd) run() error {
	datasets, err := lc.authProvider.Client().ListDatasets(context.Background(), lc.workspaceID)
	if err != nil {
		return errors.Wrap(err, "failed to list datasets")
	}

	if lc.outputFormat == output.FormatJSON {
		return output.JSON(os.Stdout, datasets)
	}
	output.DatasetsTable(os.Stdout, datasets)
	return nil
}
