package engine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitstack.dev/gitstack/internal/engine"
	gsterrors "gitstack.dev/gitstack/internal/errors"
	"gitstack.dev/gitstack/internal/github"
	"gitstack.dev/gitstack/internal/tui"
	"gitstack.dev/gitstack/testhelpers"
)

func TestSyncUpToDate(t *testing.T) {
	git := testhelpers.NewMockGit("main", "feature/b", "feature/c")
	git.SetUpToDate("main", "feature/b")
	git.SetUpToDate("feature/b", "feature/c")

	te := newTestEngine(t, git, map[string]string{
		"feature/b": "main",
		"feature/c": "feature/b",
	})

	require.NoError(t, te.Sync(context.Background()))

	// Both branches reported current, no integration commands issued
	require.Contains(t, te.out.String(), "Branch up to date")
	for _, call := range git.Calls {
		require.NotContains(t, call, "rebase")
		require.NotContains(t, call, "merge")
	}
	require.Equal(t, []string{"switch feature/b", "switch feature/c", "switch main"}, git.Calls)

	// Registry untouched, so nothing will be written back
	require.False(t, te.registry.Dirty())
}

func TestSyncMergedBranch(t *testing.T) {
	t.Run("confirmed deletion retires the branch and grafts its children", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b", "feature/c")
		git.SetUpToDate("main", "feature/c")

		te := newTestEngine(t, git, map[string]string{
			"feature/b": "main",
			"feature/c": "feature/b",
		})
		te.requests.Statuses["feature/b"] = github.Status{State: github.StateMerged}

		require.NoError(t, te.Sync(context.Background()))

		require.Contains(t, te.prompter.Questions[0], "has already been merged")
		require.Contains(t, git.Calls, "delete feature/b")

		require.False(t, te.registry.Tracked("feature/b"))
		parent, ok := te.registry.Parent("feature/c")
		require.True(t, ok)
		require.Equal(t, "main", parent)
		require.True(t, te.registry.Dirty())
	})

	t.Run("declined deletion keeps the branch tracked", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b")

		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})
		te.requests.Statuses["feature/b"] = github.Status{State: github.StateMerged}
		te.prompter.Confirms = []bool{false}

		require.NoError(t, te.Sync(context.Background()))

		require.NotContains(t, git.Calls, "delete feature/b")
		require.True(t, te.registry.Tracked("feature/b"))
	})
}

func TestSyncClosedBranch(t *testing.T) {
	git := testhelpers.NewMockGit("main", "feature/b")

	te := newTestEngine(t, git, map[string]string{"feature/b": "main"})
	te.requests.Statuses["feature/b"] = github.Status{State: github.StateClosed}

	require.NoError(t, te.Sync(context.Background()))

	require.Contains(t, te.prompter.Questions[0], "has been closed")
	require.Contains(t, git.Calls, "delete feature/b")
	require.False(t, te.registry.Tracked("feature/b"))
}

func TestSyncMissingBranch(t *testing.T) {
	git := testhelpers.NewMockGit("main")

	te := newTestEngine(t, git, map[string]string{"feature/gone": "main"})
	// The engine must not query remote state for a branch that is gone
	te.requests.StatusErrs["feature/gone"] = errTest

	require.NoError(t, te.Sync(context.Background()))

	require.False(t, te.registry.Tracked("feature/gone"))
	require.NotContains(t, git.Calls, "switch feature/gone")
}

func TestSyncRebase(t *testing.T) {
	t.Run("no change request means a default rebase", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b")
		git.SetDiverged("main", "feature/b", "bbb123 second change", "aaa456 first change")

		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})

		require.NoError(t, te.Sync(context.Background()))

		require.Contains(t, git.Calls, "rebase main")
		require.NotContains(t, git.Calls, "rebase-i main")

		// Commits listed oldest first
		out := te.out.String()
		require.Less(t, strings.Index(out, "first change"), strings.Index(out, "second change"))
	})

	t.Run("draft change request still rebases", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b")
		git.SetDiverged("main", "feature/b", "aaa456 change")

		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})
		te.requests.Statuses["feature/b"] = openStatus(true, 7, "main")

		require.NoError(t, te.Sync(context.Background()))
		require.Contains(t, git.Calls, "rebase main")
	})

	t.Run("declining drops into an interactive rebase", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b")
		git.SetDiverged("main", "feature/b", "aaa456 change")

		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})
		te.prompter.Confirms = []bool{false}

		require.NoError(t, te.Sync(context.Background()))
		require.Contains(t, git.Calls, "rebase-i main")
		require.NotContains(t, git.Calls, "rebase main")
	})
}

func TestSyncMergeForOpenRequest(t *testing.T) {
	// An open, non-draft request means history must not be rewritten
	git := testhelpers.NewMockGit("main", "feature/b")
	git.SetDiverged("main", "feature/b", "aaa456 change")

	te := newTestEngine(t, git, map[string]string{"feature/b": "main"})
	te.requests.Statuses["feature/b"] = openStatus(false, 7, "main")

	require.NoError(t, te.Sync(context.Background()))

	require.Contains(t, git.Calls, "merge main")
	require.NotContains(t, git.Calls, "rebase main")
	require.NotContains(t, git.Calls, "rebase-i main")
}

func TestSyncUnhandledState(t *testing.T) {
	git := testhelpers.NewMockGit("main", "feature/b")

	te := newTestEngine(t, git, map[string]string{"feature/b": "main"})
	te.requests.Statuses["feature/b"] = github.Status{State: github.State(99)}

	err := te.Sync(context.Background())
	require.ErrorIs(t, err, gsterrors.ErrUnhandledRequestState)
}

func TestSyncRestoresOriginalBranch(t *testing.T) {
	t.Run("switches back when it survived", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b")
		git.SetUpToDate("main", "feature/b")

		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})

		require.NoError(t, te.Sync(context.Background()))
		require.Equal(t, "switch main", git.Calls[len(git.Calls)-1])
		require.Equal(t, "main", git.Current)
	})

	t.Run("skips the restore when it was deleted", func(t *testing.T) {
		git := testhelpers.NewMockGit("feature/b", "main")

		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})
		te.requests.Statuses["feature/b"] = github.Status{State: github.StateMerged}

		require.NoError(t, te.Sync(context.Background()))
		require.Equal(t, "delete feature/b", git.Calls[len(git.Calls)-1])
	})
}

func TestSyncWithoutRequestClient(t *testing.T) {
	git := testhelpers.NewMockGit("main", "feature/b")
	registry := writeRegistry(t, map[string]string{"feature/b": "main"})

	eng, err := engine.New(engine.Options{
		Git:             git,
		Registry:        registry,
		Requests:        nil,
		Prompter:        &testhelpers.ScriptedPrompter{},
		Splog:           tui.NewSplog(),
		TrunkCandidates: []string{"main"},
	})
	require.NoError(t, err)

	err = eng.Sync(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "change-request client unavailable")
}
