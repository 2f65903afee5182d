package engine

import (
	"sort"
)

// treeNode holds one branch's place in the stack graph
type treeNode struct {
	parent   string
	children []string
}

// Tree is the in-memory stack graph derived from the registry: nodes keyed by
// branch name, each holding its parent and a sorted child list. It is never
// persisted and must be rebuilt after every registry mutation.
type Tree struct {
	nodes map[string]*treeNode
}

// BuildTree derives the tree from a branch → parent mapping. Children are
// kept in lexicographic order, which fixes the sibling traversal order.
func BuildTree(parents map[string]string) *Tree {
	t := &Tree{nodes: make(map[string]*treeNode)}
	for branch, parent := range parents {
		t.node(branch).parent = parent
		parentNode := t.node(parent)
		parentNode.children = append(parentNode.children, branch)
	}
	for _, n := range t.nodes {
		sort.Strings(n.children)
	}
	return t
}

func (t *Tree) node(branch string) *treeNode {
	n, ok := t.nodes[branch]
	if !ok {
		n = &treeNode{}
		t.nodes[branch] = n
	}
	return n
}

// Children returns the child branches of a branch, in traversal order
func (t *Tree) Children(branch string) []string {
	n, ok := t.nodes[branch]
	if !ok {
		return nil
	}
	return n.children
}

// Traverse walks the tree depth-first from trunk, calling visit once per
// reachable branch with its depth (0 at trunk). A visited set guards against
// registries that are accidentally cyclic or multiply linked; branches not
// reachable from trunk are never visited. Traversal stops at the first error.
func (t *Tree) Traverse(trunk string, visit func(branch string, depth int) error) error {
	type entry struct {
		branch string
		depth  int
	}

	visited := make(map[string]bool)
	stack := []entry{{trunk, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[cur.branch] {
			continue
		}
		if err := visit(cur.branch, cur.depth); err != nil {
			return err
		}
		visited[cur.branch] = true

		children := t.Children(cur.branch)
		// Push in reverse so the lexicographically first child pops first.
		for i := len(children) - 1; i >= 0; i-- {
			if !visited[children[i]] {
				stack = append(stack, entry{children[i], cur.depth + 1})
			}
		}
	}
	return nil
}
