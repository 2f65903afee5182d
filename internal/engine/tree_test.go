package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitstack.dev/gitstack/internal/engine"
)

func TestTreeChildren(t *testing.T) {
	tree := engine.BuildTree(map[string]string{
		"feature/z": "main",
		"feature/a": "main",
		"feature/m": "main",
	})

	// Sibling order is lexicographic
	require.Equal(t, []string{"feature/a", "feature/m", "feature/z"}, tree.Children("main"))
	require.Empty(t, tree.Children("feature/a"))
}

func TestTreeTraverse(t *testing.T) {
	t.Run("visits every reachable branch exactly once with increasing depth", func(t *testing.T) {
		tree := engine.BuildTree(map[string]string{
			"feature/b": "main",
			"feature/c": "feature/b",
			"feature/d": "feature/b",
			"feature/e": "main",
		})

		visits := map[string]int{}
		depths := map[string]int{}
		err := tree.Traverse("main", func(branch string, depth int) error {
			visits[branch]++
			depths[branch] = depth
			return nil
		})
		require.NoError(t, err)

		for branch, count := range visits {
			require.Equal(t, 1, count, "branch %s visited %d times", branch, count)
		}
		require.Len(t, visits, 5)

		require.Equal(t, 0, depths["main"])
		require.Equal(t, 1, depths["feature/b"])
		require.Equal(t, 1, depths["feature/e"])
		require.Equal(t, 2, depths["feature/c"])
		require.Equal(t, 2, depths["feature/d"])
	})

	t.Run("skips branches unreachable from trunk", func(t *testing.T) {
		tree := engine.BuildTree(map[string]string{
			"feature/b": "main",
			"orphan/b":  "orphan/a",
		})

		var visited []string
		err := tree.Traverse("main", func(branch string, depth int) error {
			visited = append(visited, branch)
			return nil
		})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"main", "feature/b"}, visited)
	})

	t.Run("terminates on a corrupted cyclic registry", func(t *testing.T) {
		// BuildTree does not validate; the visited set must still stop the walk.
		tree := engine.BuildTree(map[string]string{
			"a":  "main",
			"b":  "a",
			"a2": "b",
		})

		count := 0
		err := tree.Traverse("main", func(branch string, depth int) error {
			count++
			require.Less(t, count, 100)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		tree := engine.BuildTree(map[string]string{
			"feature/b": "main",
			"feature/c": "feature/b",
		})

		var visited []string
		err := tree.Traverse("main", func(branch string, depth int) error {
			visited = append(visited, branch)
			if branch == "feature/b" {
				return errTest
			}
			return nil
		})
		require.ErrorIs(t, err, errTest)
		require.Equal(t, []string{"main", "feature/b"}, visited)
	})
}
