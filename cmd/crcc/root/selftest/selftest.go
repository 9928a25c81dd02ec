package selftest

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/ctrlplanedev/crcc/pkg/checksum"
	"github.com/ctrlplanedev/crcc/pkg/crc"
	"github.com/spf13/cobra"
)

// NewSelfTestCmd creates a command that verifies the catalogue against
// its published check values and residues.
func NewSelfTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest [variant...]",
		Short: "Verify catalogue algorithms against their test vectors",
		Long:  `Recompute every selected algorithm's check value over "123456789" and, where the catalogue registers a residue, verify the residue property. With no arguments the whole catalogue and the named checksums are verified.`,
		Example: heredoc.Doc(`
			$ crcc selftest
			$ crcc selftest CRC-32/ISO-HDLC X-25
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params []crc.Params
			if len(args) == 0 {
				params = crc.All()
			} else {
				for _, name := range args {
					p, err := crc.Lookup(name)
					if err != nil {
						return err
					}
					params = append(params, p)
				}
			}

			failed := 0
			for _, p := range params {
				if err := p.SelfTest(); err != nil {
					log.Error("Check value mismatch", "variant", p.Name, "error", err)
					failed++
					continue
				}
				if err := p.ResidueTest(); err != nil {
					log.Error("Residue mismatch", "variant", p.Name, "error", err)
					failed++
				}
			}

			checksums := 0
			if len(args) == 0 {
				for _, v := range checksum.All() {
					checksums++
					for _, order := range []crc.ByteOrder{crc.BigEndian, crc.LittleEndian} {
						if err := v.SelfTest(order); err != nil {
							log.Error("Checksum vector mismatch", "variant", v.Name, "error", err)
							failed++
						}
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d self-tests failed", failed, len(params)+checksums)
			}
			log.Info("All self-tests passed", "variants", len(params), "checksums", checksums)
			return nil
		},
	}

	return cmd
}
