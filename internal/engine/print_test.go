package engine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitstack.dev/gitstack/testhelpers"
)

func TestPrintStack(t *testing.T) {
	t.Run("renders tracked branches with their commits", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b", "feature/c")
		git.Commits["main..feature/b"] = []string{"bbb123 second change", "aaa456 first change"}
		git.Commits["feature/b..feature/c"] = []string{"ccc789 another change"}

		te := newTestEngine(t, git, map[string]string{
			"feature/b": "main",
			"feature/c": "feature/b",
		})

		require.NoError(t, te.PrintStack(context.Background()))

		out := te.out.String()
		require.Contains(t, out, "main")
		require.Contains(t, out, "feature/b")
		require.Contains(t, out, "feature/c")
		require.Less(t, strings.Index(out, "first change"), strings.Index(out, "second change"))
		require.NotContains(t, out, "not tracked")
	})

	t.Run("lists untracked local branches after the tree", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/b", "zz/rogue", "aa/rogue")
		te := newTestEngine(t, git, map[string]string{"feature/b": "main"})

		require.NoError(t, te.PrintStack(context.Background()))

		out := te.out.String()
		require.Contains(t, out, "Branches not tracked by gitstack:")
		require.Contains(t, out, "* aa/rogue")
		require.Contains(t, out, "* zz/rogue")
		require.Less(t, strings.Index(out, "aa/rogue"), strings.Index(out, "zz/rogue"))
	})

	t.Run("tracked branch missing locally is skipped", func(t *testing.T) {
		git := testhelpers.NewMockGit("main", "feature/c")
		te := newTestEngine(t, git, map[string]string{
			"feature/gone": "main",
			"feature/c":    "feature/gone",
		})

		require.NoError(t, te.PrintStack(context.Background()))

		out := te.out.String()
		require.NotContains(t, out, "feature/gone")
		require.Contains(t, out, "feature/c")
	})
}
