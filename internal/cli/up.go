package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/cli/helpers"
	"gitstack.dev/gitstack/internal/runtime"
)

// newUpCmd creates the up command
func newUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "up",
		Aliases: []string{"u"},
		Short:   "Switch to a child of the current branch",
		Long: `Switch to a child of the current branch, one step away from trunk.

If the current branch has several children you will be prompted to pick one.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := ctx.Engine.MoveUp(cmd.Context())
				return err
			})
		},
	}
	return cmd
}
