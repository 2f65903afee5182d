package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/cli/helpers"
	"gitstack.dev/gitstack/internal/runtime"
)

// newDownCmd creates the down command
func newDownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "down",
		Aliases:      []string{"d"},
		Short:        "Switch to the parent of the current branch",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := ctx.Engine.MoveDown(cmd.Context())
				return err
			})
		},
	}
	return cmd
}
