package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gsterrors "gitstack.dev/gitstack/internal/errors"
)

// Repo combines a go-git repository for queries with a CommandRunner for
// mutations, both rooted at the same working copy.
type Repo struct {
	repo   *gogit.Repository
	runner *CommandRunner
	root   string
}

// Open opens the repository containing dir
func Open(dir string) (*Repo, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := wt.Filesystem.Root()

	return &Repo{
		repo:   repo,
		runner: NewCommandRunner(root),
		root:   root,
	}, nil
}

// Root returns the root directory of the working copy
func (r *Repo) Root() string {
	return r.root
}

// BranchNames returns the names of all local branches
func (r *Repo) BranchNames() ([]string, error) {
	branches, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// CurrentBranch returns the name of the checked-out branch
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", gsterrors.ErrNotOnBranch
	}
	return head.Name().Short(), nil
}

// BranchRevision returns the commit SHA a local branch points to
func (r *Repo) BranchRevision(name string) (string, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		return "", gsterrors.NewBranchNotFoundError(name)
	}
	return ref.Hash().String(), nil
}

// MergeBase returns the merge base of two local branches
func (r *Repo) MergeBase(branch1, branch2 string) (string, error) {
	hash1, err := r.branchHash(branch1)
	if err != nil {
		return "", err
	}
	hash2, err := r.branchHash(branch2)
	if err != nil {
		return "", err
	}

	commit1, err := r.repo.CommitObject(hash1)
	if err != nil {
		return "", fmt.Errorf("failed to get commit for %s: %w", branch1, err)
	}
	commit2, err := r.repo.CommitObject(hash2)
	if err != nil {
		return "", fmt.Errorf("failed to get commit for %s: %w", branch2, err)
	}

	mergeBases, err := commit1.MergeBase(commit2)
	if err != nil {
		return "", fmt.Errorf("failed to find merge base: %w", err)
	}
	if len(mergeBases) == 0 {
		return "", fmt.Errorf("no merge base between %s and %s", branch1, branch2)
	}

	return mergeBases[0].Hash.String(), nil
}

// RemoteURL returns the fetch URL of the origin remote
func (r *Repo) RemoteURL() (string, error) {
	remote, err := r.repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("failed to get origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}
	return urls[0], nil
}

func (r *Repo) branchHash(name string) (plumbing.Hash, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		return plumbing.ZeroHash, gsterrors.NewBranchNotFoundError(name)
	}
	return ref.Hash(), nil
}
