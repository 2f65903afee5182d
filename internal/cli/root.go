// Package cli defines the gst command surface on top of cobra. Each command
// is a thin wrapper that dispatches into the engine.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gst",
		Short:   "gst manages a stack of dependent git branches",
		Long: `gst manages a stack of dependent git branches: a forest rooted at the
trunk where every tracked branch has a recorded parent it is kept rebased or
merged onto.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newUpCmd())
	rootCmd.AddCommand(newDownCmd())
	rootCmd.AddCommand(newTrackCmd())
	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newCheckoutCmd())

	return rootCmd
}
