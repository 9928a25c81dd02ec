package crc

import (
	"bytes"
	"io"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t *testing.T, name string) Params {
	t.Helper()
	p, err := Lookup(name)
	require.NoError(t, err)
	return p
}

func mustEngine(t *testing.T, name string) *Engine {
	t.Helper()
	e, err := New(mustLookup(t, name))
	require.NoError(t, err)
	return e
}

func TestKnownAnswers(t *testing.T) {
	cases := []struct {
		variant string
		want    uint64
	}{
		{"CRC-32/ISO-HDLC", 0xCBF43926},
		{"CRC-32/BZIP2", 0xFC891918},
		{"CRC-16/XMODEM", 0x31C3},
		{"CRC-16/MODBUS", 0x4B37},
		{"X-25", 0x906E},
		{"CRC-8/SMBUS", 0xF4},
		{"CRC-8/ROHC", 0xD0},
		{"CRC-3/ROHC", 0x6},
		{"CRC-5/USB", 0x19},
		{"CRC-64/XZ", 0x995DC9BBDF1939FA},
	}
	for _, tc := range cases {
		t.Run(tc.variant, func(t *testing.T) {
			e := mustEngine(t, tc.variant)
			assert.Equal(t, tc.want, e.Process([]byte("123456789")).Final64())
		})
	}
}

func TestIncrementalFeeding(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	data := make([]byte, 257)
	rng.Read(data)

	variants := []string{
		"CRC-32/ISO-HDLC", "CRC-16/XMODEM", "CRC-16/MODBUS",
		"CRC-3/ROHC", "CRC-40/GSM", "CRC-82/DARC",
	}
	splits := []int{0, 1, 9, 128, 256, 257}

	for _, name := range variants {
		one := mustEngine(t, name).Process(data).Final()
		for _, at := range splits {
			e := mustEngine(t, name)
			e.Process(data[:at]).Process(data[at:])
			require.Zerof(t, one.Cmp(e.Final()), "%s split at %d", name, at)
		}
	}
}

func TestFinalIsIdempotent(t *testing.T) {
	e := mustEngine(t, "CRC-32/ISO-HDLC")
	e.Process([]byte("12345"))
	first := e.Final()
	assert.Zero(t, first.Cmp(e.Final()))

	// The register is untouched, so processing may continue.
	e.Process([]byte("6789"))
	assert.Equal(t, uint64(0xCBF43926), e.Final64())
}

func TestValuePeeksRawRegister(t *testing.T) {
	e := mustEngine(t, "CRC-32/ISO-HDLC")
	assert.Zero(t, e.Value().Cmp(e.Params().Init))

	e.Process([]byte("123456789"))
	// Output reflection and the XOR mask apply only in Final.
	assert.NotZero(t, e.Value().Cmp(e.Final()))
}

func TestResetReuse(t *testing.T) {
	e := mustEngine(t, "CRC-16/XMODEM")
	e.Process([]byte("garbage"))
	e.Reset()
	assert.Equal(t, uint64(0x31C3), e.Process([]byte("123456789")).Final64())
}

func TestResetTo(t *testing.T) {
	seeded, err := New(Params{
		Name: "seeded", Width: 16,
		Poly: big.NewInt(0x1021), Init: big.NewInt(0x1D0F), XorOut: big.NewInt(0),
	})
	require.NoError(t, err)

	e := mustEngine(t, "CRC-16/XMODEM")
	require.NoError(t, e.ResetTo(big.NewInt(0x1D0F)))
	data := []byte("123456789")
	assert.Equal(t, seeded.Process(data).Final64(), e.Process(data).Final64())

	assert.Error(t, e.ResetTo(big.NewInt(0x10000)))
	assert.Error(t, e.ResetTo(big.NewInt(-1)))
}

func TestFastPathsMatchGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := make([]byte, 512)
	rng.Read(data)

	for _, p := range All() {
		if p.Width != 8 && p.Width != 16 && p.Width != 32 {
			continue
		}
		fast, err := New(p)
		require.NoError(t, err)
		slow, err := New(p)
		require.NoError(t, err)

		fast.Process(data)
		slow.processGeneric(data)
		require.Zerof(t, fast.Value().Cmp(slow.Value()), "variant %s", p.Name)
	}
}

func TestWidthBoundaries(t *testing.T) {
	narrow := mustEngine(t, "CRC-3/ROHC")
	narrow.Process([]byte("123456789"))
	assert.Equal(t, uint64(0x6), narrow.Final64())
	assert.Len(t, narrow.FinalBytes(BigEndian), 1)

	wide := mustEngine(t, "CRC-82/DARC")
	wide.Process([]byte("123456789"))
	want, ok := new(big.Int).SetString("09EA83F625023801FD612", 16)
	require.True(t, ok)
	assert.Zero(t, want.Cmp(wide.Final()))
	assert.Len(t, wide.FinalBytes(BigEndian), 11)
	assert.Panics(t, func() { wide.Final64() })
}

func TestFinalBytesAndHex(t *testing.T) {
	e := mustEngine(t, "CRC-32/ISO-HDLC")
	e.Process([]byte("123456789"))

	assert.Equal(t, []byte{0xCB, 0xF4, 0x39, 0x26}, e.FinalBytes(BigEndian))
	assert.Equal(t, []byte{0x26, 0x39, 0xF4, 0xCB}, e.FinalBytes(LittleEndian))
	assert.Equal(t, "cbf43926", e.FinalHex(BigEndian))
	assert.Equal(t, "2639f4cb", e.FinalHex(LittleEndian))

	// Values narrower than their byte count keep leading zero bytes.
	rohc := mustEngine(t, "CRC-3/ROHC")
	assert.Equal(t, "07", rohc.FinalHex(BigEndian))
}

func TestNewRejectsBadParams(t *testing.T) {
	_, err := New(Params{Width: 0, Poly: big.NewInt(1), Init: big.NewInt(0), XorOut: big.NewInt(0)})
	assert.Error(t, err)

	_, err = New(Params{Width: 8, Poly: big.NewInt(0x107), Init: big.NewInt(0), XorOut: big.NewInt(0)})
	assert.Error(t, err)

	_, err = New(Params{Width: 8, Poly: big.NewInt(0x07), Init: nil, XorOut: big.NewInt(0)})
	assert.Error(t, err)

	_, err = New(Params{Width: 8, Poly: big.NewInt(0x07), Init: big.NewInt(0), XorOut: big.NewInt(0x100)})
	assert.Error(t, err)
}

func TestComputeOneShots(t *testing.T) {
	p := mustLookup(t, "CRC-16/XMODEM")
	data := []byte("123456789")

	v, err := Compute(p, data)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x31C3), v.Uint64())

	h, err := ComputeHex(p, data, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "31c3", h)

	b, err := ComputeBytes(p, data, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC3, 0x31}, b)
}

func TestEngineAsWriter(t *testing.T) {
	e := mustEngine(t, "CRC-32/ISO-HDLC")
	n, err := io.Copy(e, bytes.NewReader([]byte("123456789")))
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, uint64(0xCBF43926), e.Final64())
}

func TestParamsEqual(t *testing.T) {
	a := mustLookup(t, "CRC-16/IBM-SDLC")
	b := mustLookup(t, "X-25")
	assert.True(t, a.Equal(b))

	c := mustLookup(t, "CRC-16/MCRF4XX")
	assert.False(t, a.Equal(c))
}
