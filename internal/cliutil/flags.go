package cliutil

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// GetString returns the flag value, falling back to the same-named
// environment variable (upper-cased, dashes as underscores).
func GetString(cmd *cobra.Command, flag string) string {
	value, _ := cmd.Flags().GetString(flag)
	if value != "" {
		return value
	}

	return os.Getenv(strings.ToUpper(strings.ReplaceAll(flag, "-", "_")))
}
