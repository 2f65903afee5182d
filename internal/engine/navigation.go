package engine

import (
	"context"
	"fmt"

	gsterrors "gitstack.dev/gitstack/internal/errors"
	"gitstack.dev/gitstack/internal/tui"
)

// MoveDown switches to the parent of the current branch, one step toward
// trunk, and returns the branch ending up checked out.
func (e *Engine) MoveDown(ctx context.Context) (string, error) {
	current, err := e.git.CurrentBranch()
	if err != nil {
		return "", err
	}

	if current == e.trunk {
		e.splog.Info("Already on trunk.")
		return current, nil
	}

	parent, ok := e.registry.Parent(current)
	if !ok {
		return current, fmt.Errorf("%w: %s is not tracked, use `gst track <parent>` and try again",
			gsterrors.ErrBranchNotTracked, current)
	}

	if err := e.git.SwitchBranch(ctx, parent); err != nil {
		return current, err
	}
	e.splog.Info("Checked out %s.", tui.ColorBranchName(parent, true))
	return parent, nil
}

// MoveUp switches to a child of the current branch, one step away from
// trunk. With several children the operator picks one; the selection index is
// bounds-checked so a scripted out-of-range answer fails without switching.
func (e *Engine) MoveUp(ctx context.Context) (string, error) {
	current, err := e.git.CurrentBranch()
	if err != nil {
		return "", err
	}

	if current != e.trunk && !e.registry.Tracked(current) {
		return current, fmt.Errorf("%w: %s", gsterrors.ErrBranchNotTracked, current)
	}

	children := e.tree.Children(current)
	if len(children) == 0 {
		e.splog.Info("Branch %s has no children.", tui.ColorBranchName(current, true))
		return current, nil
	}

	child := children[0]
	if len(children) > 1 {
		idx, err := e.prompter.Choose(
			fmt.Sprintf("Multiple children of %s, select one:", current), children)
		if err != nil {
			return current, err
		}
		if idx < 0 || idx >= len(children) {
			return current, fmt.Errorf("selection %d out of range [0, %d)", idx, len(children))
		}
		child = children[idx]
	}

	if err := e.git.SwitchBranch(ctx, child); err != nil {
		return current, err
	}
	e.splog.Info("Checked out %s.", tui.ColorBranchName(child, true))
	return child, nil
}
