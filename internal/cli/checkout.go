package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/cli/helpers"
	"gitstack.dev/gitstack/internal/runtime"
	"gitstack.dev/gitstack/internal/tui"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "checkout [branch]",
		Aliases:      []string{"co"},
		Short:        "Check out a branch, with an interactive picker when omitted",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				target := ""
				if len(args) > 0 {
					target = args[0]
				} else {
					branches, err := ctx.Repo.BranchNames()
					if err != nil {
						return err
					}
					target, err = tui.PickBranch("Select a branch to check out:", branches)
					if err != nil {
						return err
					}
				}

				if err := ctx.Repo.SwitchBranch(cmd.Context(), target); err != nil {
					return err
				}
				ctx.Splog.Info("Checked out %s.", tui.ColorBranchName(target, true))
				return nil
			})
		},
	}
	return cmd
}
