package crc

import (
	"math/big"
	"math/bits"
)

// reflectTable maps every byte to its bit-reversed form (bit 0 swaps
// with bit 7 and so on). Built once at package init.
var reflectTable [256]byte

func init() {
	for i := range reflectTable {
		b := byte(i)
		var r byte
		for j := 0; j < 8; j++ {
			r = r<<1 | b&1
			b >>= 1
		}
		reflectTable[i] = r
	}
}

// ReflectByte returns b with its bit order reversed.
func ReflectByte(b byte) byte {
	return reflectTable[b]
}

// reflect64 reverses the low width bits of v. Width must be in [0, 64].
func reflect64(width int, v uint64) uint64 {
	if width == 0 {
		return 0
	}
	return bits.Reverse64(v) >> (64 - uint(width))
}

// ReflectBits returns a new value with the low width bits of v in
// reversed order. Bits of v at or above width are ignored; width zero
// yields zero.
func ReflectBits(width int, v *big.Int) *big.Int {
	r := new(big.Int)
	for i := 0; i < width; i++ {
		if v.Bit(i) == 1 {
			r.SetBit(r, width-1-i, 1)
		}
	}
	return r
}
