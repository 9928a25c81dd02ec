package list

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/ctrlplanedev/crcc/internal/cliutil"
	"github.com/ctrlplanedev/crcc/pkg/checksum"
	"github.com/ctrlplanedev/crcc/pkg/crc"
	"github.com/spf13/cobra"
)

// NewListCmd creates a command that prints the whole catalogue.
func NewListCmd() *cobra.Command {
	var checksums bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in CRC and checksum variants",
		Example: heredoc.Doc(`
			$ crcc list
			$ crcc list --format yaml
			$ crcc list --checksums --template '{{range .}}{{.name}}{{"\n"}}{{end}}'
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if checksums {
				summaries := make([]map[string]interface{}, 0, len(checksum.All()))
				for _, v := range checksum.All() {
					summary := map[string]interface{}{
						"name":  v.Name,
						"width": v.Width,
						"kind":  v.Kind.String(),
					}
					if len(v.Aliases) > 0 {
						summary["aliases"] = v.Aliases
					}
					summaries = append(summaries, summary)
				}
				return cliutil.HandleOutput(cmd, summaries)
			}

			summaries := make([]map[string]interface{}, 0, len(crc.All()))
			for _, p := range crc.All() {
				summaries = append(summaries, cliutil.VariantSummary(p))
			}
			return cliutil.HandleOutput(cmd, summaries)
		},
	}

	cmd.Flags().BoolVar(&checksums, "checksums", false, "List the named checksums instead of the CRC catalogue")
	cliutil.AddOutputFlags(cmd)

	return cmd
}
