package cliutil

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseHexValue reads a CRC or register value from a command line
// argument. A 0x prefix is optional; bare digits are taken as hex.
func ParseHexValue(s string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, ok := new(big.Int).SetString(trimmed, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid hex value %q", s)
	}
	return v, nil
}

func IntPtr(i int) *int {
	return &i
}

func BoolPtr(b bool) *bool {
	return &b
}
