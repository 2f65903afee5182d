package git

import (
	"context"
)

// CreateAndSwitchBranch creates a branch starting at startPoint and checks it
// out. An empty startPoint branches from the current HEAD.
func (r *Repo) CreateAndSwitchBranch(ctx context.Context, name, startPoint string) error {
	args := []string{"checkout", "-b", name}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	_, err := r.runner.Run(ctx, args...)
	return err
}

// SwitchBranch checks out an existing branch
func (r *Repo) SwitchBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "switch", "-q", name)
	return err
}

// DeleteBranch force-deletes a local branch
func (r *Repo) DeleteBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "branch", "-D", name)
	return err
}

// CommitsBetween returns the oneline log of commits reachable from branch but
// not from parent, newest first, merge commits excluded.
func (r *Repo) CommitsBetween(ctx context.Context, parent, branch string) ([]string, error) {
	return r.runner.RunLines(ctx, "log", parent+".."+branch, "--oneline", "--no-merges")
}

// Rebase replays the current branch onto another branch
func (r *Repo) Rebase(ctx context.Context, onto string) error {
	_, err := r.runner.Run(ctx, "rebase", onto)
	return err
}

// RebaseInteractive starts an interactive rebase onto another branch, attached
// to the operator's terminal.
func (r *Repo) RebaseInteractive(onto string) error {
	return r.runner.RunInteractive("rebase", "-i", onto)
}

// MergeBranch merges another branch into the current branch, always creating
// a merge commit.
func (r *Repo) MergeBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "merge", "-q", "--no-ff", "--no-edit", name)
	return err
}

// Push pushes a branch to origin, setting the upstream on first push
func (r *Repo) Push(ctx context.Context, branch string) error {
	_, err := r.runner.Run(ctx, "push", "-u", "origin", branch)
	return err
}
