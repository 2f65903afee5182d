package engine

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"gitstack.dev/gitstack/internal/tui"
)

// PrintStack renders the whole stack tree, each branch with its own commits,
// followed by any local branches the registry does not know about.
func (e *Engine) PrintStack(ctx context.Context) error {
	localBranches, err := e.git.BranchNames()
	if err != nil {
		return err
	}

	renderer := tui.NewStackRenderer(
		e.originalBranch,
		e.registry.Parent,
		func(parent, branch string) ([]string, error) {
			return e.git.CommitsBetween(ctx, parent, branch)
		},
	)

	err = e.Traverse(func(branch string, depth int) error {
		if !lo.Contains(localBranches, branch) {
			return nil
		}
		for _, line := range renderer.RenderBranch(branch, depth) {
			e.splog.Info("%s", line)
		}
		return nil
	})
	if err != nil {
		return err
	}

	untracked := lo.Filter(localBranches, func(branch string, _ int) bool {
		return branch != e.trunk && !e.registry.Tracked(branch)
	})
	if len(untracked) > 0 {
		sort.Strings(untracked)
		e.splog.Newline()
		e.splog.Warn("Branches not tracked by gitstack:")
		for _, branch := range untracked {
			e.splog.Info("* %s", branch)
		}
	}
	return nil
}
