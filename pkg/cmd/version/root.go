package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edvaldo-gutierres/api-pwb/pkg/version"
)

// NewVersionCmd returns a new version command
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of pwbctl",
		Long:  "Print the version of pwbctl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getVersion())
		},
	}

	return cmd
}

func getVersion() string {
	return fmt.Sprintf("Version: %s\nGitCommit: %s", version.BuildVersion, version.Vcs)
}
