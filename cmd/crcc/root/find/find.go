package find

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/ctrlplanedev/crcc/internal/cliutil"
	"github.com/ctrlplanedev/crcc/pkg/crc"
	"github.com/spf13/cobra"
)

// NewFindCmd creates a command that filters the catalogue by parameter
// values.
func NewFindCmd() *cobra.Command {
	var width int
	var poly, init, xorOut, check string
	var reflectIn, reflectOut bool

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find catalogue algorithms by parameters",
		Long:  `Filter the CRC catalogue by any combination of width, polynomial, initial value, reflection flags, XOR mask and check value. Flags left unset match everything.`,
		Example: heredoc.Doc(`
			# Every 16-bit algorithm over the CCITT polynomial
			$ crcc find --width 16 --poly 0x1021

			# Reflected 32-bit algorithms with all-ones init
			$ crcc find --width 32 --init 0xFFFFFFFF --reflect-in
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter crc.Filter
			if width != 0 {
				filter.Width = cliutil.IntPtr(width)
			}
			if poly != "" {
				v, err := cliutil.ParseHexValue(poly)
				if err != nil {
					return err
				}
				filter.Poly = v
			}
			if init != "" {
				v, err := cliutil.ParseHexValue(init)
				if err != nil {
					return err
				}
				filter.Init = v
			}
			if xorOut != "" {
				v, err := cliutil.ParseHexValue(xorOut)
				if err != nil {
					return err
				}
				filter.XorOut = v
			}
			if check != "" {
				v, err := cliutil.ParseHexValue(check)
				if err != nil {
					return err
				}
				filter.Check = v
			}
			if cmd.Flags().Changed("reflect-in") {
				filter.ReflectIn = cliutil.BoolPtr(reflectIn)
			}
			if cmd.Flags().Changed("reflect-out") {
				filter.ReflectOut = cliutil.BoolPtr(reflectOut)
			}

			found := crc.Find(filter)
			summaries := make([]map[string]interface{}, len(found))
			for i, p := range found {
				summaries[i] = cliutil.VariantSummary(p)
			}
			return cliutil.HandleOutput(cmd, summaries)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "CRC width in bits")
	cmd.Flags().StringVar(&poly, "poly", "", "Polynomial, hex, top bit omitted")
	cmd.Flags().StringVar(&init, "init", "", "Initial register value, hex")
	cmd.Flags().StringVar(&xorOut, "xor-out", "", "Output XOR mask, hex")
	cmd.Flags().StringVar(&check, "check", "", "Check value over '123456789', hex")
	cmd.Flags().BoolVar(&reflectIn, "reflect-in", false, "Match input-reflected algorithms")
	cmd.Flags().BoolVar(&reflectOut, "reflect-out", false, "Match output-reflected algorithms")
	cliutil.AddOutputFlags(cmd)

	return cmd
}
