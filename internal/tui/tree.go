package tui

import (
	"strings"
)

// StackRenderer renders one stack branch per call, with the branch's own
// commits listed beneath it. Lookups are injected so the renderer stays
// independent of the engine.
type StackRenderer struct {
	currentBranch string
	getParent     func(branch string) (string, bool)
	getCommits    func(parent, branch string) ([]string, error)
}

// NewStackRenderer creates a renderer. getCommits receives oneline log
// entries newest first, as produced by the repository collaborator.
func NewStackRenderer(
	currentBranch string,
	getParent func(branch string) (string, bool),
	getCommits func(parent, branch string) ([]string, error),
) *StackRenderer {
	return &StackRenderer{
		currentBranch: currentBranch,
		getParent:     getParent,
		getCommits:    getCommits,
	}
}

// RenderBranch returns the display lines for one branch at the given stack
// depth: the branch line, then its commit titles oldest first.
func (r *StackRenderer) RenderBranch(branch string, depth int) []string {
	name := ColorBranchName(branch, branch == r.currentBranch)

	var lines []string
	indent := ""
	if depth > 0 {
		indent = strings.Repeat("  ", depth-1)
		lines = append(lines, indent+"↳ "+name)
	} else {
		lines = append(lines, name)
	}

	parent, ok := r.getParent(branch)
	if !ok {
		return lines
	}

	commits, err := r.getCommits(parent, branch)
	if err != nil {
		return lines
	}
	if len(commits) == 0 {
		lines = append(lines, indent+"  "+ColorError("empty branch"))
		return lines
	}
	for i := len(commits) - 1; i >= 0; i-- {
		lines = append(lines, indent+"  "+ColorDim(commitTitle(commits[i])))
	}
	return lines
}

// commitTitle strips the leading SHA from an oneline log entry
func commitTitle(oneline string) string {
	if _, title, found := strings.Cut(oneline, " "); found {
		return title
	}
	return oneline
}
