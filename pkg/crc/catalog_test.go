package crc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueIsWellFormed(t *testing.T) {
	require.NotEmpty(t, catalog)
	for _, p := range All() {
		require.NoErrorf(t, p.Validate(), "variant %s", p.Name)
		require.NotNilf(t, p.Check, "variant %s has no check value", p.Name)
	}
}

func TestCatalogueCheckValues(t *testing.T) {
	for _, p := range All() {
		require.NoError(t, p.SelfTest(), p.Name)
	}
}

func TestCatalogueResidues(t *testing.T) {
	for _, p := range All() {
		require.NoError(t, p.ResidueTest(), p.Name)
	}
}

func TestSelfTestAllPasses(t *testing.T) {
	assert.Empty(t, SelfTestAll())
}

func TestSelfTestReportsMismatch(t *testing.T) {
	p := mustLookup(t, "CRC-16/XMODEM")
	p.Name = "broken"
	p.Check = big.NewInt(0x31C4)

	err := p.SelfTest()
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "broken", mismatch.Variant)
	assert.Equal(t, uint64(0x31C4), mismatch.Expected.Uint64())
	assert.Equal(t, uint64(0x31C3), mismatch.Actual.Uint64())
	assert.Contains(t, err.Error(), "expected 0x31c4")
}

func TestResidueTestSkipsOddWidths(t *testing.T) {
	// Width 30 carries a residue but cannot append its CRC as whole
	// bytes, so the property is vacuous.
	p := mustLookup(t, "CRC-30/CDMA")
	require.NotNil(t, p.Residue)
	assert.NoError(t, p.ResidueTest())
}

func TestWellKnownResidues(t *testing.T) {
	cases := map[string]uint64{
		"X-25":            0xF0B8,
		"CRC-16/PROFIBUS": 0xE394,
		"CRC-32/ISO-HDLC": 0xDEBB20E3,
		"CRC-16/MODBUS":   0x0000,
	}
	for name, want := range cases {
		p := mustLookup(t, name)
		require.NotNilf(t, p.Residue, "variant %s", name)
		assert.Equalf(t, want, p.Residue.Uint64(), "variant %s", name)
	}
}
