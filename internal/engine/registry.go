package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	gsterrors "gitstack.dev/gitstack/internal/errors"
)

// Registry is the persisted branch → parent mapping, the sole durable state.
// Mutations are buffered in memory and written back once at the end of the
// invocation, and only if something changed.
type Registry struct {
	path    string
	parents map[string]string
	dirty   bool
}

// LoadRegistry reads the registry file at path. A missing file is an empty
// registry, not an error.
func LoadRegistry(path string) (*Registry, error) {
	reg := &Registry{
		path:    path,
		parents: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &reg.parents); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}
	return reg, nil
}

// Parent returns the recorded parent of a branch
func (r *Registry) Parent(branch string) (string, bool) {
	parent, ok := r.parents[branch]
	return parent, ok
}

// Tracked reports whether a branch has a recorded parent
func (r *Registry) Tracked(branch string) bool {
	_, ok := r.parents[branch]
	return ok
}

// Branches returns the tracked branch names, sorted
func (r *Registry) Branches() []string {
	names := make([]string, 0, len(r.parents))
	for branch := range r.parents {
		names = append(names, branch)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the parent mapping
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, len(r.parents))
	for branch, parent := range r.parents {
		out[branch] = parent
	}
	return out
}

// Track records parent as the parent of branch, overwriting any existing
// entry. Tracking a branch onto itself or onto one of its own descendants
// fails with ErrCycleDetected.
func (r *Registry) Track(branch, parent string) error {
	if branch == parent {
		return fmt.Errorf("%w: %s cannot be its own parent", gsterrors.ErrCycleDetected, branch)
	}
	// Walk up from the proposed parent; reaching branch means parent is a
	// descendant of branch and the link would close a loop.
	seen := map[string]bool{}
	for cur := parent; ; {
		next, ok := r.parents[cur]
		if !ok {
			break
		}
		if next == branch {
			return fmt.Errorf("%w: %s is a descendant of %s", gsterrors.ErrCycleDetected, parent, branch)
		}
		if seen[next] {
			break
		}
		seen[next] = true
		cur = next
	}

	r.parents[branch] = parent
	r.dirty = true
	return nil
}

// Untrack removes a branch from the registry, grafting its children onto its
// former parent so the tree stays connected. Unknown branches are a no-op.
func (r *Registry) Untrack(branch string) {
	parent, ok := r.parents[branch]
	if !ok {
		return
	}
	delete(r.parents, branch)
	for child, childParent := range r.parents {
		if childParent == branch {
			r.parents[child] = parent
		}
	}
	r.dirty = true
}

// Dirty reports whether the registry has unsaved mutations
func (r *Registry) Dirty() bool {
	return r.dirty
}

// Save writes the registry back to its file and clears the dirty flag
func (r *Registry) Save() error {
	data, err := json.Marshal(r.parents)
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write registry %s: %w", r.path, err)
	}
	r.dirty = false
	return nil
}

// SaveIfDirty writes the registry only if it has unsaved mutations
func (r *Registry) SaveIfDirty() error {
	if !r.dirty {
		return nil
	}
	return r.Save()
}
