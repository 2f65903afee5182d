package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gsterrors "gitstack.dev/gitstack/internal/errors"
	"gitstack.dev/gitstack/testhelpers"
)

func TestCreateBranch(t *testing.T) {
	t.Run("defaults the parent to trunk", func(t *testing.T) {
		git := testhelpers.NewMockGit("main")
		te := newTestEngine(t, git, nil)

		require.NoError(t, te.CreateBranch(context.Background(), "feature/b", ""))

		require.Equal(t, []string{"create feature/b main"}, git.Calls)
		parent, ok := te.registry.Parent("feature/b")
		require.True(t, ok)
		require.Equal(t, "main", parent)
		require.True(t, te.registry.Dirty())
	})

	t.Run("stacks on an explicit parent", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b")
		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})

		require.NoError(t, te.CreateBranch(context.Background(), "feature/c", "feature/b"))

		require.Equal(t, []string{"create feature/c feature/b"}, git.Calls)
		parent, _ := te.registry.Parent("feature/c")
		require.Equal(t, "feature/b", parent)
		// The new branch is wired into the tree immediately
		require.Equal(t, []string{"feature/c"}, te.Children("feature/b"))
	})
}

func TestTrackCurrentBranch(t *testing.T) {
	t.Run("nonexistent parent is an error", func(t *testing.T) {
		git := testhelpers.NewMockGit("feature/b", "main")
		te := newTestEngine(t, git, nil)

		err := te.TrackCurrentBranch("feature/ghost")
		require.ErrorIs(t, err, gsterrors.ErrBranchNotFound)
		require.False(t, te.registry.Dirty())
	})

	t.Run("branch cannot be its own parent", func(t *testing.T) {
		git := testhelpers.NewMockGit("feature/b", "main")
		te := newTestEngine(t, git, nil)

		err := te.TrackCurrentBranch("feature/b")
		require.ErrorIs(t, err, gsterrors.ErrCycleDetected)
	})

	t.Run("trunk cannot have a parent", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b")
		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})

		err := te.TrackCurrentBranch("feature/b")
		require.Error(t, err)
		require.Contains(t, err.Error(), "trunk")
	})

	t.Run("records a first parent without prompting", func(t *testing.T) {
		git := testhelpers.NewMockGit("feature/b", "main")
		te := newTestEngine(t, git, nil)

		require.NoError(t, te.TrackCurrentBranch("main"))

		require.Empty(t, te.prompter.Questions)
		parent, _ := te.registry.Parent("feature/b")
		require.Equal(t, "main", parent)
		require.True(t, te.registry.Dirty())
	})

	t.Run("same parent again is a no-op", func(t *testing.T) {
		git := testhelpers.NewMockGit("feature/b", "main")
		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})

		require.NoError(t, te.TrackCurrentBranch("main"))

		require.Empty(t, te.prompter.Questions)
		require.False(t, te.registry.Dirty())
		require.Contains(t, te.out.String(), "no changes needed")
	})

	t.Run("re-parenting asks first", func(t *testing.T) {
		git := testhelpers.NewMockGit("feature/c", "main", "feature/b")
		parents := map[string]string{
			"feature/b": "main",
			"feature/c": "main",
		}

		t.Run("confirmed", func(t *testing.T) {
			te := newTestEngine(t, git, parents)
			te.prompter.Confirms = []bool{true}

			require.NoError(t, te.TrackCurrentBranch("feature/b"))

			require.Contains(t, te.prompter.Questions[0], "switch the parent")
			parent, _ := te.registry.Parent("feature/c")
			require.Equal(t, "feature/b", parent)
			require.True(t, te.registry.Dirty())
		})

		t.Run("declined", func(t *testing.T) {
			te := newTestEngine(t, git, parents)
			te.prompter.Confirms = []bool{false}

			require.NoError(t, te.TrackCurrentBranch("feature/b"))

			parent, _ := te.registry.Parent("feature/c")
			require.Equal(t, "main", parent)
			require.False(t, te.registry.Dirty())
		})
	})

	t.Run("re-parenting onto a descendant is rejected", func(t *testing.T) {
		git := testhelpers.NewMockGit("feature/b", "main", "feature/c")
		te := newTestEngine(t, git, map[string]string{
			"feature/b": "main",
			"feature/c": "feature/b",
		})
		te.prompter.Confirms = []bool{true}

		err := te.TrackCurrentBranch("feature/c")
		require.ErrorIs(t, err, gsterrors.ErrCycleDetected)
		// Link unchanged
		parent, _ := te.registry.Parent("feature/b")
		require.Equal(t, "main", parent)
	})
}
