// Package engine holds the stack model: the persisted branch registry, the
// derived stack tree, trunk resolution, and the synchronization state machine
// that keeps every tracked branch integrated with its parent.
package engine

import (
	"context"
)

// Git is the subset of repository operations the engine depends on. It is
// implemented by internal/git.Repo and by the scripted mock in testhelpers.
type Git interface {
	BranchNames() ([]string, error)
	CurrentBranch() (string, error)
	BranchRevision(name string) (string, error)
	MergeBase(branch1, branch2 string) (string, error)
	CommitsBetween(ctx context.Context, parent, branch string) ([]string, error)
	CreateAndSwitchBranch(ctx context.Context, name, startPoint string) error
	SwitchBranch(ctx context.Context, name string) error
	DeleteBranch(ctx context.Context, name string) error
	Rebase(ctx context.Context, onto string) error
	RebaseInteractive(onto string) error
	MergeBranch(ctx context.Context, name string) error
	Push(ctx context.Context, branch string) error
}

// Prompter is the interactive capability the engine depends on for
// confirmations and selections. Injectable for scripted runs.
type Prompter interface {
	// Confirm asks a yes/no question and returns the answer
	Confirm(question string, defaultValue bool) (bool, error)

	// Choose asks the operator to pick one of options and returns its index
	Choose(question string, options []string) (int, error)
}
