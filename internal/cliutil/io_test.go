package cliutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	orig := Fs
	Fs = afero.NewMemMapFs()
	t.Cleanup(func() { Fs = orig })
	return Fs
}

func TestFeedInputFromFile(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "input.bin", []byte("123456789"), 0o644))

	var sink bytes.Buffer
	err := FeedInput(&cobra.Command{}, "input.bin", &sink)
	require.NoError(t, err)
	assert.Equal(t, "123456789", sink.String())
}

func TestFeedInputFromStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("stream"))

	for _, name := range []string{"", "-"} {
		var sink bytes.Buffer
		cmd.SetIn(strings.NewReader("stream"))
		require.NoError(t, FeedInput(cmd, name, &sink))
		assert.Equal(t, "stream", sink.String())
	}
}

func TestFeedInputMissingFile(t *testing.T) {
	useMemFs(t)
	var sink bytes.Buffer
	assert.Error(t, FeedInput(&cobra.Command{}, "nope.bin", &sink))
}

func TestWriteResult(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, WriteResult(&cobra.Command{}, "out.bin", []byte{0xCB, 0xF4}))

	data, err := afero.ReadFile(fs, "out.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCB, 0xF4}, data)
}

func TestWriteResultToStdout(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, WriteResult(cmd, "-", []byte("0xCBF43926\n")))
	assert.Equal(t, "0xCBF43926\n", out.String())
}

func TestParseHexValue(t *testing.T) {
	for _, in := range []string{"0xCBF43926", "cbf43926", " 0Xcbf43926 "} {
		v, err := ParseHexValue(in)
		require.NoError(t, err, in)
		assert.Equal(t, uint64(0xCBF43926), v.Uint64(), in)
	}

	for _, in := range []string{"", "0x", "zz", "0x-1"} {
		_, err := ParseHexValue(in)
		assert.Error(t, err, in)
	}
}
