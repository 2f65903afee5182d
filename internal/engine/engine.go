package engine

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	gsterrors "gitstack.dev/gitstack/internal/errors"
	"gitstack.dev/gitstack/internal/github"
	"gitstack.dev/gitstack/internal/tui"
)

// Options configures an Engine. Requests may be nil when no change-request
// client is available; operations that need it fail with a clear error.
type Options struct {
	Git             Git
	Registry        *Registry
	Requests        github.Client
	Prompter        Prompter
	Splog           *tui.Splog
	TrunkCandidates []string
}

// Engine ties the registry, the derived stack tree, and the external
// collaborators together for one invocation.
type Engine struct {
	git      Git
	registry *Registry
	requests github.Client
	prompter Prompter
	splog    *tui.Splog

	tree           *Tree
	trunk          string
	originalBranch string
}

// New builds an engine: resolves the trunk, caches the branch checked out at
// process start, and derives the stack tree from the registry.
func New(opts Options) (*Engine, error) {
	branches, err := opts.Git.BranchNames()
	if err != nil {
		return nil, err
	}

	trunk, err := ResolveTrunk(branches, opts.TrunkCandidates)
	if err != nil {
		return nil, err
	}

	originalBranch, err := opts.Git.CurrentBranch()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		git:            opts.Git,
		registry:       opts.Registry,
		requests:       opts.Requests,
		prompter:       opts.Prompter,
		splog:          opts.Splog,
		trunk:          trunk,
		originalBranch: originalBranch,
	}
	e.rebuildTree()
	return e, nil
}

// Trunk returns the resolved trunk branch name
func (e *Engine) Trunk() string {
	return e.trunk
}

// OriginalBranch returns the branch checked out at process start
func (e *Engine) OriginalBranch() string {
	return e.originalBranch
}

// Parent returns the recorded parent of a branch
func (e *Engine) Parent(branch string) (string, bool) {
	return e.registry.Parent(branch)
}

// Children returns the tracked children of a branch, in traversal order
func (e *Engine) Children(branch string) []string {
	return e.tree.Children(branch)
}

// Tracked reports whether a branch has a recorded parent
func (e *Engine) Tracked(branch string) bool {
	return e.registry.Tracked(branch)
}

// Traverse walks the stack tree from trunk
func (e *Engine) Traverse(visit func(branch string, depth int) error) error {
	return e.tree.Traverse(e.trunk, visit)
}

// Wrapup flushes the registry to disk if anything changed this invocation
func (e *Engine) Wrapup() error {
	return e.registry.SaveIfDirty()
}

// CreateBranch creates a new branch from parent, checks it out, and tracks
// it. An empty parent defaults to the trunk.
func (e *Engine) CreateBranch(ctx context.Context, branch, parent string) error {
	if parent == "" {
		parent = e.trunk
	}
	if err := e.git.CreateAndSwitchBranch(ctx, branch, parent); err != nil {
		return err
	}
	if err := e.registry.Track(branch, parent); err != nil {
		return err
	}
	e.rebuildTree()
	e.splog.Info("Created %s on top of %s.", tui.ColorBranchName(branch, true), tui.ColorBranchName(parent, false))
	return nil
}

// TrackCurrentBranch records parent as the parent of the branch checked out
// at process start. This changes bookkeeping only; commits are not replayed
// onto the new base.
func (e *Engine) TrackCurrentBranch(parent string) error {
	branches, err := e.git.BranchNames()
	if err != nil {
		return err
	}
	if !lo.Contains(branches, parent) {
		return gsterrors.NewBranchNotFoundError(parent)
	}

	branch := e.originalBranch
	if branch == parent {
		return fmt.Errorf("%w: branch cannot be its own parent", gsterrors.ErrCycleDetected)
	}
	if branch == e.trunk {
		return fmt.Errorf("trunk %s cannot have a parent", e.trunk)
	}

	if existing, ok := e.registry.Parent(branch); ok {
		if existing == parent {
			e.splog.Info("Parent of %s is already %s, no changes needed.",
				tui.ColorBranchName(branch, true), tui.ColorBranchName(parent, false))
			return nil
		}
		question := fmt.Sprintf("This will switch the parent of %s from %s to %s. Continue?", branch, existing, parent)
		ok, err := e.prompter.Confirm(question, false)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := e.registry.Track(branch, parent); err != nil {
		return err
	}
	e.rebuildTree()
	e.splog.Info("Tracking %s on top of %s.", tui.ColorBranchName(branch, true), tui.ColorBranchName(parent, false))
	return nil
}

// untrackBranch removes a branch from tracking, grafting its children onto
// its former parent, and refreshes the derived tree.
func (e *Engine) untrackBranch(branch string) {
	e.registry.Untrack(branch)
	e.rebuildTree()
}

func (e *Engine) rebuildTree() {
	e.tree = BuildTree(e.registry.Snapshot())
}
