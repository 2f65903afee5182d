// Package testhelpers provides scripted stand-ins for the repository, the
// change-request service, and the interactive prompter, so engine behavior
// can be tested without a real git checkout or network.
package testhelpers

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	gsterrors "gitstack.dev/gitstack/internal/errors"
)

// MockGit is a scripted repository. Mutations are recorded in Calls and
// applied to the in-memory branch state so later queries observe them.
type MockGit struct {
	Branches  []string
	Current   string
	Revisions map[string]string   // branch -> tip SHA
	Bases     map[string]string   // "parent..branch" -> merge-base SHA
	Commits   map[string][]string // "parent..branch" -> oneline entries, newest first
	Calls     []string
	FailOn    map[string]error // call key -> error to return
}

// NewMockGit creates a mock with the given branches, the first one checked out
func NewMockGit(branches ...string) *MockGit {
	current := ""
	if len(branches) > 0 {
		current = branches[0]
	}
	return &MockGit{
		Branches:  branches,
		Current:   current,
		Revisions: make(map[string]string),
		Bases:     make(map[string]string),
		Commits:   make(map[string][]string),
		FailOn:    make(map[string]error),
	}
}

func (g *MockGit) record(key string) error {
	g.Calls = append(g.Calls, key)
	return g.FailOn[key]
}

// SetUpToDate scripts branch as fully based on parent's current tip
func (g *MockGit) SetUpToDate(parent, branch string) {
	tip := g.Revisions[parent]
	if tip == "" {
		tip = "sha-" + parent
		g.Revisions[parent] = tip
	}
	g.Bases[parent+".."+branch] = tip
}

// SetDiverged scripts branch as needing integration with parent
func (g *MockGit) SetDiverged(parent, branch string, commits ...string) {
	if g.Revisions[parent] == "" {
		g.Revisions[parent] = "sha-" + parent
	}
	g.Bases[parent+".."+branch] = "sha-old-base-" + branch
	g.Commits[parent+".."+branch] = commits
}

func (g *MockGit) BranchNames() ([]string, error) {
	return append([]string{}, g.Branches...), nil
}

func (g *MockGit) CurrentBranch() (string, error) {
	return g.Current, nil
}

func (g *MockGit) BranchRevision(name string) (string, error) {
	rev, ok := g.Revisions[name]
	if !ok {
		return "", gsterrors.NewBranchNotFoundError(name)
	}
	return rev, nil
}

func (g *MockGit) MergeBase(branch1, branch2 string) (string, error) {
	base, ok := g.Bases[branch1+".."+branch2]
	if !ok {
		return "", fmt.Errorf("no scripted merge base for %s..%s", branch1, branch2)
	}
	return base, nil
}

func (g *MockGit) CommitsBetween(_ context.Context, parent, branch string) ([]string, error) {
	return g.Commits[parent+".."+branch], nil
}

func (g *MockGit) CreateAndSwitchBranch(_ context.Context, name, startPoint string) error {
	if err := g.record("create " + name + " " + startPoint); err != nil {
		return err
	}
	g.Branches = append(g.Branches, name)
	g.Current = name
	return nil
}

func (g *MockGit) SwitchBranch(_ context.Context, name string) error {
	if err := g.record("switch " + name); err != nil {
		return err
	}
	if !lo.Contains(g.Branches, name) {
		return gsterrors.NewBranchNotFoundError(name)
	}
	g.Current = name
	return nil
}

func (g *MockGit) DeleteBranch(_ context.Context, name string) error {
	if err := g.record("delete " + name); err != nil {
		return err
	}
	g.Branches = lo.Without(g.Branches, name)
	return nil
}

func (g *MockGit) Rebase(_ context.Context, onto string) error {
	return g.record("rebase " + onto)
}

func (g *MockGit) RebaseInteractive(onto string) error {
	return g.record("rebase-i " + onto)
}

func (g *MockGit) MergeBranch(_ context.Context, name string) error {
	return g.record("merge " + name)
}

func (g *MockGit) Push(_ context.Context, branch string) error {
	return g.record("push " + branch)
}
