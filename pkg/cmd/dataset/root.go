package dataset

import (
	"github.com/spf13/cobra"

	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/auth"
)

// NewDatasetCmd returns a new dataset command
func NewDatasetCmd() *cobra.Command {
	datasetCmd := &cobra.Command{
		Use:     "dataset",
		Short:   "Manage Power BI datasets",
		Long:    "Manage Power BI datasets",
		Aliases: []string{"ds"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	datasetCmd.AddCommand(newListCmd(auth.NewProvider()))
	datasetCmd.AddCommand(newRefreshCmd(auth.NewProvider()))
	datasetCmd.AddCommand(newHistoryCmd(auth.NewProvider()))

	return datasetCmd
}
