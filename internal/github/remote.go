package github

import (
	"fmt"
	"strings"
)

// ParseOwnerRepo extracts the owner and repository name from a git remote URL.
// Both ssh (git@github.com:owner/repo.git) and https
// (https://github.com/owner/repo.git) forms are handled.
func ParseOwnerRepo(remoteURL string) (owner, repo string, err error) {
	url := strings.TrimSpace(remoteURL)
	url = strings.TrimSuffix(url, ".git")

	var path string
	switch {
	case strings.HasPrefix(url, "git@"):
		_, after, found := strings.Cut(url, ":")
		if !found {
			return "", "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
		}
		path = after
	case strings.Contains(url, "://"):
		_, after, _ := strings.Cut(url, "://")
		parts := strings.SplitN(after, "/", 2)
		if len(parts) != 2 {
			return "", "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
		}
		path = parts[1]
	default:
		return "", "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf("remote URL has no owner/repo: %s", remoteURL)
	}
	return segments[0], segments[1], nil
}
