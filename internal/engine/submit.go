package engine

import (
	"context"
	"fmt"

	gsterrors "gitstack.dev/gitstack/internal/errors"
	"gitstack.dev/gitstack/internal/github"
	"gitstack.dev/gitstack/internal/tui"
)

// Submit walks from the current branch down to trunk, pushing each branch
// and filing a draft change request against its tracked parent where none
// exists. Existing requests keep their history; only a stale base is
// re-targeted. The original branch is checked out again when done.
func (e *Engine) Submit(ctx context.Context) error {
	if e.requests == nil {
		return fmt.Errorf("change-request client unavailable: set GITHUB_TOKEN or log in with gh")
	}

	branch := e.originalBranch
	for branch != e.trunk {
		parent, ok := e.registry.Parent(branch)
		if !ok {
			return fmt.Errorf("%w: %s", gsterrors.ErrBranchNotTracked, branch)
		}

		if err := e.git.Push(ctx, branch); err != nil {
			return err
		}

		status, err := e.requests.StatusFor(ctx, branch)
		if err != nil {
			return err
		}

		switch status.State {
		case github.StateNone:
			created, err := e.requests.Create(ctx, github.CreateOptions{
				Head:  branch,
				Base:  parent,
				Title: branch,
				Draft: true,
			})
			if err != nil {
				return err
			}
			e.splog.Info("%s %s", tui.ColorOK("Created PR for"), tui.ColorBranchName(branch, false))
			if created.URL != "" {
				e.splog.Info("%s", tui.ColorDim(created.URL))
			}
		case github.StateOpen:
			if status.Base != parent {
				if err := e.requests.UpdateBase(ctx, status.Number, parent); err != nil {
					return err
				}
				e.splog.Info("Re-targeted PR #%d at %s.", status.Number, tui.ColorBranchName(parent, false))
			}
			e.splog.Info("Pushed %s.", tui.ColorBranchName(branch, false))
		default:
			e.splog.Warn("Skipping %s: change request is %v.", branch, status.State)
		}

		branch = parent
	}

	return e.git.SwitchBranch(ctx, e.originalBranch)
}
