// Root command for the loomctl CLI, the administrative interface to the
// Loom controller store.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/loomworks/loom/pkg/types"
)

// Version is the loomctl release version.
const Version = "0.3.0"

// Exit codes: user errors (bad input, duplicates, not found) versus system
// errors (storage failures).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "loomctl",
	Short:         "loomctl administers the Loom controller store",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "",
		"configuration directory (default: $(CWD)/.loom)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"data directory for the embedded backend (default: $(CWD)/.loom-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable diagnostic logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(versionCmd)
}

// exitCode maps an error to the CLI exit code taxonomy.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, types.ErrStorage) {
		return exitSysError
	}
	return exitUserError
}
