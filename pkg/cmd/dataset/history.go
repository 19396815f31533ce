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

type historyCmd struct {
	workspaceID     string
	datasetID       string
	top             int
	rawOutputFormat string
	outputFormat    output.Format
	authProvider    auth.Provider
}

func newHistoryCmd(authProvider auth.Provider) *cobra.Command {
	hc := &historyCmd{
		authProvider: authProvider,
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the refresh history of a dataset, newest first",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return hc.prerun()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return hc.run()
		},
	}

	authProvider.AddFlags(cmd.Flags())
	f := cmd.Flags()
	f.StringVar(&hc.workspaceID, options.WorkspaceID, "", "ID of the workspace (group) that contains the dataset")
	f.StringVar(&hc.datasetID, options.DatasetID, "", "ID of the dataset to show the refresh history of")
	f.IntVar(&hc.top, options.Top, 0, "Limit the history to the requested number of entries")
	f.StringVar(&hc.rawOutputFormat, options.Output, string(output.FormatTable), "Output format. One of: table|json")

	return cmd
}

func (hc *historyCmd) prerun() error {
	if hc.workspaceID == "" {
		return options.FlagIsRequiredError(options.WorkspaceID)
	}
	if hc.datasetID == "" {
		return options.FlagIsRequiredError(options.DatasetID)
	}
	if hc.top < 0 {
		return errors.Errorf("--%s must not be negative", options.Top)
	}
	format, err := output.ParseFormat(hc.rawOutputFormat)
	if err != nil {
		return err
	}
	hc.outputFormat = format
	return hc.authProvider.Validate()
}

func (hc *historyCmd) run() error {
	history, err := hc.authProvider.Client().GetRefreshHistory(context.Background(), hc.workspaceID, hc.datasetID, hc.top)
	if err != nil {
		return errors.Wrap(err, "failed to get refresh history")
	}

	if hc.outputFormat == output.FormatJSON {
		return output.JSON(os.Stdout, history)
	}
	output.RefreshHistoryTable(os.Stdout, history)
	return nil
}
