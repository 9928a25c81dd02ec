package compute

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ctrlplanedev/crcc/internal/cliutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	orig := cliutil.Fs
	cliutil.Fs = afero.NewMemMapFs()
	t.Cleanup(func() { cliutil.Fs = orig })
	return cliutil.Fs
}

func runCompute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewComputeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestComputeFile(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "input.bin", []byte("123456789"), 0o644))

	out, err := runCompute(t, "", "CRC-32", "input.bin")
	require.NoError(t, err)
	assert.Equal(t, "0xCBF43926\n", out)
}

func TestComputeStdin(t *testing.T) {
	out, err := runCompute(t, "123456789", "XMODEM")
	require.NoError(t, err)
	assert.Equal(t, "0x31C3\n", out)

	out, err = runCompute(t, "123456789", "XMODEM", "-")
	require.NoError(t, err)
	assert.Equal(t, "0x31C3\n", out)
}

func TestComputeFormats(t *testing.T) {
	out, err := runCompute(t, "123456789", "CRC-32", "--format", "dec")
	require.NoError(t, err)
	assert.Equal(t, "3421780262\n", out)

	out, err = runCompute(t, "123456789", "CRC-32", "--format", "hex-raw")
	require.NoError(t, err)
	assert.Equal(t, "CBF43926\n", out)

	out, err = runCompute(t, "123456789", "CRC-32", "--format", "bytes-le")
	require.NoError(t, err)
	assert.Equal(t, "\x26\x39\xf4\xcb", out)

	_, err = runCompute(t, "123456789", "CRC-32", "--format", "base64")
	assert.Error(t, err)
}

func TestComputeChecksumVariant(t *testing.T) {
	out, err := runCompute(t, "123456789", "SUM-16")
	require.NoError(t, err)
	assert.Equal(t, "0xD0D4\n", out)

	out, err = runCompute(t, "123456789", "SUM-16", "--byte-order", "little")
	require.NoError(t, err)
	assert.Equal(t, "0xD4D0\n", out)
}

func TestComputeToFile(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "image.bin", []byte("123456789"), 0o644))

	_, err := runCompute(t, "", "CRC-32", "image.bin", "--format", "bytes-le", "--output", "image.crc")
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "image.crc")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x26, 0x39, 0xF4, 0xCB}, data)
}

func TestComputeUnknownVariant(t *testing.T) {
	_, err := runCompute(t, "", "CRC-99/NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}
