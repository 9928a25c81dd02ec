package identify

import (
	"bytes"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/ctrlplanedev/crcc/internal/cliutil"
	"github.com/ctrlplanedev/crcc/pkg/crc"
	"github.com/spf13/cobra"
)

// NewIdentifyCmd creates a command that searches the catalogue for
// algorithms reproducing a known CRC over the given data.
func NewIdentifyCmd() *cobra.Command {
	var value string
	var width int
	var all bool

	cmd := &cobra.Command{
		Use:   "identify [file]",
		Short: "Identify which CRC algorithm produced a known value",
		Long:  `Scan the catalogue for algorithms whose CRC over the given file (or stdin) equals --value. Restricting the width with --width skips every other-width candidate and speeds the scan up considerably on large data.`,
		Example: heredoc.Doc(`
			# Which 16-bit algorithm produced 0x906e over this frame?
			$ crcc identify frame.bin --value 0x906e --width 16

			# All algorithms that match, any width
			$ cat blob.bin | crcc identify --value 0xCBF43926 --all
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := cliutil.ParseHexValue(value)
			if err != nil {
				return err
			}

			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			var data bytes.Buffer
			if err := cliutil.FeedInput(cmd, file, &data); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			log.Info("Scanning CRC catalogue",
				"value", value,
				"width", width,
				"bytes", data.Len(),
			)
			matches := crc.Identify(data.Bytes(), want, crc.IdentifyOptions{
				Width: width,
				All:   all,
			})
			if len(matches) == 0 {
				log.Warn("No catalogue algorithm reproduces the value")
			}

			summaries := make([]map[string]interface{}, len(matches))
			for i, p := range matches {
				summaries[i] = cliutil.VariantSummary(p)
			}
			return cliutil.HandleOutput(cmd, summaries)
		},
	}

	cmd.Flags().StringVarP(&value, "value", "v", "", "Known CRC value, hex with optional 0x prefix")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Known CRC width in bits (0 scans every width)")
	cmd.Flags().BoolVar(&all, "all", false, "Collect every matching algorithm instead of stopping at the first")
	cmd.MarkFlagRequired("value")
	cliutil.AddOutputFlags(cmd)

	return cmd
}
