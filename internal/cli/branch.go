package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/cli/helpers"
	"gitstack.dev/gitstack/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branch <name> [parent]",
		Aliases: []string{"b"},
		Short:   "Create a new branch on top of a parent and track it",
		Long: `Create a new branch on top of a parent and track it.

The parent defaults to the trunk. Pass "." to branch off the branch that was
checked out when gst started.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				parent := ""
				if len(args) > 1 {
					parent = args[1]
					if parent == "." {
						parent = ctx.Engine.OriginalBranch()
					}
				}
				return ctx.Engine.CreateBranch(cmd.Context(), args[0], parent)
			})
		},
	}
	return cmd
}
