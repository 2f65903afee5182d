package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/cli/helpers"
	"gitstack.dev/gitstack/internal/runtime"
)

// newSubmitCmd creates the pr command
func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Push the stack and create or update its pull requests",
		Long: `Push the stack and create or update its pull requests.

Walks from the current branch down to trunk. Each branch is pushed; branches
without a pull request get a draft PR targeting their tracked parent, and
existing open PRs are re-targeted if their base drifted.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return ctx.Engine.Submit(cmd.Context())
			})
		},
	}
	return cmd
}
