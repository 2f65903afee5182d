package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/cli/helpers"
	"gitstack.dev/gitstack/internal/runtime"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Aliases: []string{"s"},
		Short:   "Integrate every tracked branch with its parent",
		Long: `Integrate every tracked branch with its parent.

Walks the stack from trunk outward. Branches whose pull request was merged or
closed are deleted (after confirmation) and their children re-pointed to the
deleted branch's parent. Diverged branches are rebased onto their parent, or
merged when an open non-draft pull request relies on their history.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return ctx.Engine.Sync(cmd.Context())
			})
		},
	}
	return cmd
}
