package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/cli/helpers"
	"gitstack.dev/gitstack/internal/runtime"
)

// newPrintCmd creates the print command
func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "print",
		Aliases:      []string{"p"},
		Short:        "Print the stack tree with each branch's commits",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return ctx.Engine.PrintStack(cmd.Context())
			})
		},
	}
	return cmd
}
