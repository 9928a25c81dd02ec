package crc

import (
	"fmt"
	"math/big"
)

// ByteOrder selects how multi-byte CRC and checksum values are laid out
// when rendered as bytes or hex.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little"
	}
	return "big"
}

// ParseByteOrder maps "big" and "little" to the corresponding order.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "big", "":
		return BigEndian, nil
	case "little":
		return LittleEndian, nil
	}
	return BigEndian, fmt.Errorf("invalid byte order %q: must be 'big' or 'little'", s)
}

// Params describes a CRC algorithm in the RevEng parameter model. Poly
// carries the polynomial with the implicit top bit omitted. Check is the
// expected value over the ASCII bytes "123456789"; Residue is the
// register constant left after processing a message followed by its own
// CRC. Both are verification metadata: two parameter sets with equal
// defining fields describe the same algorithm whatever their names,
// check or residue say.
type Params struct {
	Name    string
	Aliases []string

	Width      int
	Poly       *big.Int
	Init       *big.Int
	ReflectIn  bool
	ReflectOut bool
	XorOut     *big.Int

	Check   *big.Int
	Residue *big.Int // nil when the catalogue does not define one
}

// ByteWidth returns the number of bytes needed to hold a CRC value of
// this width.
func (p Params) ByteWidth() int {
	return (p.Width + 7) / 8
}

// Equal reports whether the defining fields match. Names, check value
// and residue are not compared.
func (p Params) Equal(o Params) bool {
	return p.Width == o.Width &&
		p.Poly.Cmp(o.Poly) == 0 &&
		p.Init.Cmp(o.Init) == 0 &&
		p.ReflectIn == o.ReflectIn &&
		p.ReflectOut == o.ReflectOut &&
		p.XorOut.Cmp(o.XorOut) == 0
}

// Validate checks that the parameter set is well formed: a positive
// width and poly/init/xor-out values that fit into it.
func (p Params) Validate() error {
	if p.Width < 1 {
		return fmt.Errorf("invalid width %d: must be at least 1", p.Width)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(p.Width))
	fields := []struct {
		name  string
		value *big.Int
	}{
		{"poly", p.Poly},
		{"init", p.Init},
		{"xorout", p.XorOut},
	}
	for _, f := range fields {
		if f.value == nil {
			return fmt.Errorf("%s is not set", f.name)
		}
		if f.value.Sign() < 0 || f.value.Cmp(limit) >= 0 {
			return fmt.Errorf("%s 0x%s does not fit into %d bits", f.name, f.value.Text(16), p.Width)
		}
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%s (width=%d poly=0x%s init=0x%s refin=%t refout=%t xorout=0x%s)",
		p.Name, p.Width, p.Poly.Text(16), p.Init.Text(16), p.ReflectIn, p.ReflectOut, p.XorOut.Text(16))
}
