package engine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	gsterrors "gitstack.dev/gitstack/internal/errors"
)

// ResolveTrunk returns the first candidate present among the local branches.
// Without a trunk no tree can be anchored, so failure here is fatal.
func ResolveTrunk(localBranches, candidates []string) (string, error) {
	for _, candidate := range candidates {
		if lo.Contains(localBranches, candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", gsterrors.ErrNoValidTrunk, strings.Join(candidates, ", "))
}
