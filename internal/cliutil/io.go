package cliutil

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Fs is the filesystem commands read input from and write results to.
// Tests swap it for an in-memory implementation.
var Fs afero.Fs = afero.NewOsFs()

// Files are streamed into the digest in blocks so large inputs never
// sit in memory whole.
const readBlockSize = 1 << 20

// FeedInput copies the named file, or the command's stdin when name is
// empty or "-", into w.
func FeedInput(cmd *cobra.Command, name string, w io.Writer) error {
	var r io.Reader
	if name == "" || name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := Fs.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if _, err := io.CopyBuffer(w, r, make([]byte, readBlockSize)); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// WriteResult writes data to the named file, or to the command's stdout
// when name is empty or "-".
func WriteResult(cmd *cobra.Command, name string, data []byte) error {
	if name == "" || name == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := afero.WriteFile(Fs, name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
