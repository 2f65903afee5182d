package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/cli/helpers"
	"gitstack.dev/gitstack/internal/runtime"
)

// newTrackCmd creates the track command
func newTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "track <parent>",
		Aliases: []string{"t"},
		Short:   "Record a parent for the current branch",
		Long: `Record a parent for the current branch.

Re-tracking onto a different parent asks for confirmation and only updates
the bookkeeping link; commits are not replayed onto the new base.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return ctx.Engine.TrackCurrentBranch(args[0])
			})
		},
	}
	return cmd
}
