package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/dataset"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/report"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/version"
	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd/workspace"
)

const (
	rootName             = "pwbctl"
	rootShortDescription = "pwbctl automates Power BI dataset refreshes"
	rootLongDescription  = rootShortDescription + " using a service principal."
)

var (
	debug bool
)

// NewRootCmd returns the root command for pwbctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   rootName,
		Short: rootShortDescription,
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}

	p := cmd.PersistentFlags()
	p.BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(workspace.NewWorkspaceCmd())
	cmd.AddCommand(dataset.NewDatasetCmd())
	cmd.AddCommand(report.NewReportCmd())

	return cmd
}
