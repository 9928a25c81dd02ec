package cliutil

import (
	"fmt"
	"math/big"

	"github.com/ctrlplanedev/crcc/pkg/crc"
)

// VariantSummary flattens a parameter set into the map shape
// HandleOutput renders. Hex fields are zero padded to the variant's
// nibble count.
func VariantSummary(p crc.Params) map[string]interface{} {
	summary := map[string]interface{}{
		"name":       p.Name,
		"width":      p.Width,
		"poly":       hexField(p.Width, p.Poly),
		"init":       hexField(p.Width, p.Init),
		"reflectIn":  p.ReflectIn,
		"reflectOut": p.ReflectOut,
		"xorOut":     hexField(p.Width, p.XorOut),
	}
	if len(p.Aliases) > 0 {
		summary["aliases"] = p.Aliases
	}
	if p.Check != nil {
		summary["check"] = hexField(p.Width, p.Check)
	}
	if p.Residue != nil {
		summary["residue"] = hexField(p.Width, p.Residue)
	}
	return summary
}

func hexField(width int, v *big.Int) string {
	return fmt.Sprintf("0x%0*x", (width+3)/4, v)
}
