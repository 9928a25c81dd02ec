package version

import (
	"github.com/ctrlplanedev/crcc/internal/cliutil"
	"github.com/spf13/cobra"
)

// Version is set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewVersionCmd creates a new command that displays version information
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  `Display the version, git commit, and build date of the CLI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.HandleOutput(cmd, map[string]any{
				"version":   Version,
				"gitCommit": GitCommit,
				"buildDate": BuildDate,
			})
		},
	}

	cliutil.AddOutputFlags(cmd)

	return cmd
}
