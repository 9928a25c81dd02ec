package crc

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// Engine computes a CRC over a byte stream for a single parameter set.
// The register holds the running value in the MSB-first convention;
// Final applies output reflection and the XOR mask without touching the
// register, so feeding may continue afterwards.
//
// An Engine is not safe for concurrent use. Independent engines are.
type Engine struct {
	p Params

	// Narrow kernel state, widths up to 64 bits.
	reg     uint64
	poly    uint64
	initial uint64
	xorOut  uint64
	mask    uint64
	highbit uint64
	shift   uint // aligns the incoming byte with the register top
	scale   uint // register enlargement for widths below 8

	// Wide kernel state, widths above 64 bits.
	wreg  *big.Int
	wpoly *big.Int
	wmask *big.Int

	step func(e *Engine, data []byte)
}

// New returns an engine for the given parameters. The parameters are
// validated once here; processing itself cannot fail.
func New(p Params) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CRC parameters: %w", err)
	}
	e := &Engine{p: p}
	if p.Width > 64 {
		e.wpoly = new(big.Int).Set(p.Poly)
		e.wmask = new(big.Int).Lsh(big.NewInt(1), uint(p.Width))
		e.wmask.Sub(e.wmask, big.NewInt(1))
		e.wreg = new(big.Int).Set(p.Init)
		e.step = (*Engine).processWide
		return e, nil
	}
	e.poly = p.Poly.Uint64()
	e.initial = p.Init.Uint64()
	e.xorOut = p.XorOut.Uint64()
	e.mask = widthMask(p.Width)
	e.highbit = 1 << uint(p.Width-1)
	if p.Width >= 8 {
		e.shift = uint(p.Width - 8)
	} else {
		e.scale = uint(8 - p.Width)
	}
	e.reg = e.initial
	switch p.Width {
	case 8:
		e.step = (*Engine).process8
	case 16:
		e.step = (*Engine).process16
	case 32:
		e.step = (*Engine).process32
	default:
		e.step = (*Engine).processGeneric
	}
	return e, nil
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// Params returns the parameter set the engine was built from.
func (e *Engine) Params() Params {
	return e.p
}

// Width returns the CRC width in bits.
func (e *Engine) Width() int {
	return e.p.Width
}

// Process folds data into the running register and returns the engine
// for chaining. Feeding data in chunks gives the same result as a
// single call over the concatenation.
func (e *Engine) Process(data []byte) *Engine {
	e.step(e, data)
	return e
}

// Write feeds p into the engine. It implements io.Writer and never
// fails, so engines can sit at the end of an io.Copy.
func (e *Engine) Write(p []byte) (int, error) {
	e.step(e, p)
	return len(p), nil
}

// processGeneric handles every width from 1 to 64. Widths below 8 run
// in a register enlarged by 8-width bits so the byte XOR stays aligned;
// the shift is undone before storing back.
func (e *Engine) processGeneric(data []byte) {
	crc, poly, highbit, mask, shift := e.reg, e.poly, e.highbit, e.mask, e.shift
	if e.scale > 0 {
		crc <<= e.scale
		poly <<= e.scale
		highbit = 0x80
		mask = 0xFF
		shift = 0
	}
	reflect := e.p.ReflectIn
	for _, b := range data {
		if reflect {
			b = reflectTable[b]
		}
		crc ^= uint64(b) << shift
		for i := 0; i < 8; i++ {
			if crc&highbit != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		crc &= mask
	}
	if e.scale > 0 {
		crc >>= e.scale
	}
	e.reg = crc
}

func (e *Engine) process8(data []byte) {
	crc, poly := e.reg, e.poly
	reflect := e.p.ReflectIn
	for _, b := range data {
		if reflect {
			b = reflectTable[b]
		}
		crc ^= uint64(b)
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		crc &= 0xFF
	}
	e.reg = crc
}

func (e *Engine) process16(data []byte) {
	crc, poly := e.reg, e.poly
	reflect := e.p.ReflectIn
	for _, b := range data {
		if reflect {
			b = reflectTable[b]
		}
		crc ^= uint64(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		crc &= 0xFFFF
	}
	e.reg = crc
}

func (e *Engine) process32(data []byte) {
	crc, poly := e.reg, e.poly
	reflect := e.p.ReflectIn
	for _, b := range data {
		if reflect {
			b = reflectTable[b]
		}
		crc ^= uint64(b) << 24
		for i := 0; i < 8; i++ {
			if crc&0x80000000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		crc &= 0xFFFFFFFF
	}
	e.reg = crc
}

func (e *Engine) processWide(data []byte) {
	crc := e.wreg
	top := e.p.Width - 1
	shift := uint(e.p.Width - 8)
	tmp := new(big.Int)
	reflect := e.p.ReflectIn
	for _, b := range data {
		if reflect {
			b = reflectTable[b]
		}
		crc.Xor(crc, tmp.Lsh(tmp.SetUint64(uint64(b)), shift))
		for i := 0; i < 8; i++ {
			bit := crc.Bit(top)
			crc.Lsh(crc, 1)
			if bit == 1 {
				crc.Xor(crc, e.wpoly)
			}
		}
		crc.And(crc, e.wmask)
	}
}

// Final returns the finalized CRC: the register after output reflection
// and the XOR stage. The register itself is unchanged, so Final is
// idempotent and more data may be processed afterwards.
func (e *Engine) Final() *big.Int {
	if e.p.Width > 64 {
		crc := e.wreg
		if e.p.ReflectOut {
			crc = ReflectBits(e.p.Width, crc)
		} else {
			crc = new(big.Int).Set(crc)
		}
		return crc.Xor(crc, e.p.XorOut)
	}
	return new(big.Int).SetUint64(e.final64())
}

func (e *Engine) final64() uint64 {
	crc := e.reg
	if e.p.ReflectOut {
		crc = reflect64(e.p.Width, crc)
	}
	return crc ^ e.xorOut
}

// Final64 is Final for engines of width 64 or less, avoiding the
// big.Int detour. It panics on wider engines.
func (e *Engine) Final64() uint64 {
	if e.p.Width > 64 {
		panic("crc: Final64 on engine wider than 64 bits")
	}
	return e.final64()
}

// FinalBytes returns the finalized CRC as ceil(width/8) bytes in the
// given order.
func (e *Engine) FinalBytes(order ByteOrder) []byte {
	buf := make([]byte, e.p.ByteWidth())
	e.Final().FillBytes(buf)
	if order == LittleEndian {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return buf
}

// FinalHex returns the finalized CRC as a lower-case hex string without
// a 0x prefix, zero padded to ceil(width/8) bytes.
func (e *Engine) FinalHex(order ByteOrder) string {
	return hex.EncodeToString(e.FinalBytes(order))
}

// Value returns the raw register, before output reflection and the XOR
// stage.
func (e *Engine) Value() *big.Int {
	if e.p.Width > 64 {
		return new(big.Int).Set(e.wreg)
	}
	return new(big.Int).SetUint64(e.reg)
}

// Reset restores the register to the configured initial value and
// returns the engine for chaining.
func (e *Engine) Reset() *Engine {
	if e.p.Width > 64 {
		e.wreg.Set(e.p.Init)
	} else {
		e.reg = e.initial
	}
	return e
}

// ResetTo sets the register to an arbitrary starting value instead of
// the configured one.
func (e *Engine) ResetTo(v *big.Int) error {
	if v.Sign() < 0 || v.BitLen() > e.p.Width {
		return fmt.Errorf("register value 0x%s does not fit into %d bits", v.Text(16), e.p.Width)
	}
	if e.p.Width > 64 {
		e.wreg.Set(v)
	} else {
		e.reg = v.Uint64()
	}
	return nil
}

// Compute runs the full cycle over data and returns the finalized CRC.
func Compute(p Params, data []byte) (*big.Int, error) {
	e, err := New(p)
	if err != nil {
		return nil, err
	}
	return e.Process(data).Final(), nil
}

// ComputeHex is Compute with the result rendered as a hex string in the
// given byte order.
func ComputeHex(p Params, data []byte, order ByteOrder) (string, error) {
	e, err := New(p)
	if err != nil {
		return "", err
	}
	return e.Process(data).FinalHex(order), nil
}

// ComputeBytes is Compute with the result rendered as bytes in the
// given byte order.
func ComputeBytes(p Params, data []byte, order ByteOrder) ([]byte, error) {
	e, err := New(p)
	if err != nil {
		return nil, err
	}
	return e.Process(data).FinalBytes(order), nil
}
