package workspace

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/auth"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/options"
	"github.com/edvaldo-gutierres/api-pwb/pkg/output"
)

// NewWorkspaceCmd returns a new workspace command
func NewWorkspaceCmd() *cobra.Command {
	workspaceCmd := &cobra.Command{
		Use:     "workspace",
		Short:   "Manage Power BI workspaces",
		Long:    "Manage Power BI workspaces",
		Aliases: []string{"ws"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	workspaceCmd.AddCommand(newListCmd(auth.NewProvider()))

	return workspaceCmd
}

type listCmd struct {
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
		Short:   "List the workspaces the service principal has access to",
		Aliases: []string{"ls"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return lc.prerun()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return lc.run()
		},
	}

	authProvider.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&lc.rawOutputFormat, options.Output, string(output.FormatTable), "Output format. One of: table|json")

	return cmd
}

func (lc *listCmd) prerun() error {
	format, err := output.ParseFormat(lc.rawOutputFormat)
	if err != nil {
		return err
	}
	lc.outputFormat = format
	return lc.authProvider.Validate()
}

func (lc *listCmd) run() error {
	workspaces, err := lc.authProvider.Client().ListWorkspaces(context.Background())
	if err != nil {
		return errors.Wrap(err, "failed to list workspaces")
	}

	if lc.outputFormat == output.FormatJSON {
		return output.JSON(os.Stdout, workspaces)
	}
	output.WorkspacesTable(os.Stdout, workspaces)
	return nil
}
