package engine

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	gsterrors "gitstack.dev/gitstack/internal/errors"
	"gitstack.dev/gitstack/internal/github"
	"gitstack.dev/gitstack/internal/tui"
)

// Sync walks every tracked branch from trunk outward and brings each one in
// line with its parent: branches gone from the repository are untracked,
// branches whose change request was merged or closed are retired (after
// confirmation), diverged branches are rebased or merged onto their parent.
// The original branch is restored afterwards if it still exists.
func (e *Engine) Sync(ctx context.Context) error {
	if e.requests == nil {
		return fmt.Errorf("change-request client unavailable: set GITHUB_TOKEN or log in with gh")
	}

	err := e.Traverse(func(branch string, depth int) error {
		if branch == e.trunk {
			return nil
		}
		return e.syncBranch(ctx, branch)
	})
	if err != nil {
		return err
	}

	// The original branch may have been deleted during the walk.
	branches, err := e.git.BranchNames()
	if err != nil {
		return err
	}
	if lo.Contains(branches, e.originalBranch) {
		return e.git.SwitchBranch(ctx, e.originalBranch)
	}
	return nil
}

// syncBranch runs the per-branch decision procedure: existence check, remote
// status check, divergence check, then integration.
func (e *Engine) syncBranch(ctx context.Context, branch string) error {
	branches, err := e.git.BranchNames()
	if err != nil {
		return err
	}
	if !lo.Contains(branches, branch) {
		e.splog.Info("Branch %s no longer exists, untracking.", tui.ColorBranchName(branch, false))
		e.untrackBranch(branch)
		return nil
	}

	if err := e.git.SwitchBranch(ctx, branch); err != nil {
		return err
	}

	status, err := e.requests.StatusFor(ctx, branch)
	if err != nil {
		return err
	}

	switch status.State {
	case github.StateMerged:
		return e.retireBranch(ctx, branch,
			fmt.Sprintf("Branch %s has already been merged, delete local branch?", branch))
	case github.StateClosed:
		return e.retireBranch(ctx, branch,
			fmt.Sprintf("Branch %s has been closed, delete local branch?", branch))
	case github.StateNone, github.StateOpen:
		// fall through to the divergence check
	default:
		return fmt.Errorf("%w: %v for branch %s", gsterrors.ErrUnhandledRequestState, status.State, branch)
	}

	parent, ok := e.registry.Parent(branch)
	if !ok {
		return fmt.Errorf("%w: %s", gsterrors.ErrBranchNotTracked, branch)
	}

	parentTip, err := e.git.BranchRevision(parent)
	if err != nil {
		return err
	}
	mergeBase, err := e.git.MergeBase(parent, branch)
	if err != nil {
		return err
	}
	if parentTip == mergeBase {
		e.splog.Info("%s %s -> %s", tui.ColorOK("Branch up to date"),
			tui.ColorBranchName(branch, false), tui.ColorBranchName(parent, false))
		e.splog.Newline()
		return nil
	}

	if status.State == github.StateNone || status.Draft {
		if err := e.rebaseBranch(ctx, branch, parent); err != nil {
			return err
		}
	} else {
		// An open, non-draft request means the remote history is relied
		// upon and must not be rewritten.
		e.splog.Info("Merging %s into %s", tui.ColorBranchName(parent, false), tui.ColorBranchName(branch, false))
		if err := e.git.MergeBranch(ctx, parent); err != nil {
			return err
		}
	}
	e.splog.Newline()
	return nil
}

// rebaseBranch shows the commits about to be replayed, oldest first, then
// rebases the branch onto its parent. Declining the default drops into an
// interactive rebase instead.
func (e *Engine) rebaseBranch(ctx context.Context, branch, parent string) error {
	commits, err := e.git.CommitsBetween(ctx, parent, branch)
	if err != nil {
		return err
	}

	e.splog.Info("Rebasing these commits in %s onto %s:",
		tui.ColorBranchName(branch, false), tui.ColorBranchName(parent, false))
	for i := len(commits) - 1; i >= 0; i-- {
		e.splog.Info("* %s", commits[i])
	}

	proceed, err := e.prompter.Confirm("Continue (no drops into interactive rebase)?", true)
	if err != nil {
		return err
	}
	if !proceed {
		return e.git.RebaseInteractive(parent)
	}
	return e.git.Rebase(ctx, parent)
}

// retireBranch deletes a merged or closed branch after confirmation and
// untracks it, grafting its children onto its former parent.
func (e *Engine) retireBranch(ctx context.Context, branch, question string) error {
	remove, err := e.prompter.Confirm(question, true)
	if err != nil {
		return err
	}
	if remove {
		if err := e.git.SwitchBranch(ctx, e.trunk); err != nil {
			return err
		}
		if err := e.git.DeleteBranch(ctx, branch); err != nil {
			return err
		}
		e.untrackBranch(branch)
		e.splog.Info("Deleted %s.", tui.ColorBranchName(branch, false))
	}
	e.splog.Newline()
	return nil
}
