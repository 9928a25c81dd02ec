package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/ctrlplanedev/crcc/cmd/crcc/root/compute"
	"github.com/ctrlplanedev/crcc/cmd/crcc/root/find"
	"github.com/ctrlplanedev/crcc/cmd/crcc/root/identify"
	"github.com/ctrlplanedev/crcc/cmd/crcc/root/list"
	"github.com/ctrlplanedev/crcc/cmd/crcc/root/selftest"
	"github.com/ctrlplanedev/crcc/cmd/crcc/root/version"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the crcc command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crcc <command>",
		Short: "Compute, identify and verify CRCs and checksums",
		Long:  `crcc computes parametrised CRCs and simple word checksums over files or stdin, identifies which catalogue algorithm produced a known value, and verifies the built-in catalogue against its published test vectors.`,
		Example: heredoc.Doc(`
			$ crcc compute CRC-32 firmware.bin
			$ cat frame.bin | crcc identify --value 0x906e --width 16
			$ crcc list --format yaml
		`),
		SilenceUsage: true,
	}

	cmd.AddCommand(compute.NewComputeCmd())
	cmd.AddCommand(identify.NewIdentifyCmd())
	cmd.AddCommand(find.NewFindCmd())
	cmd.AddCommand(list.NewListCmd())
	cmd.AddCommand(selftest.NewSelfTestCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
