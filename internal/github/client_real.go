package github

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	gsterrors "gitstack.dev/gitstack/internal/errors"
)

// RealClient implements Client against the GitHub API
type RealClient struct {
	client *gogithub.Client
	owner  string
	repo   string
}

// NewRealClient creates a RealClient for the repository behind remoteURL.
// The token comes from GITHUB_TOKEN or, failing that, `gh auth token`.
func NewRealClient(ctx context.Context, remoteURL string) (*RealClient, error) {
	token, err := getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	owner, repo, err := ParseOwnerRepo(remoteURL)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &RealClient{
		client: gogithub.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// StatusFor returns the change-request status for a branch
func (c *RealClient) StatusFor(ctx context.Context, branch string) (Status, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &gogithub.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branch),
		State: "all",
		ListOptions: gogithub.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return Status{}, fmt.Errorf("failed to list pull requests for %s: %w", branch, err)
	}
	if len(prs) == 0 {
		return Status{State: StateNone}, nil
	}

	pr := prs[0]
	status := Status{
		Draft:  pr.GetDraft(),
		Number: pr.GetNumber(),
		Base:   pr.GetBase().GetRef(),
		URL:    pr.GetHTMLURL(),
	}

	switch pr.GetState() {
	case "open":
		status.State = StateOpen
	case "closed":
		if pr.MergedAt != nil {
			status.State = StateMerged
		} else {
			status.State = StateClosed
		}
	default:
		return Status{}, fmt.Errorf("%w: %q for branch %s", gsterrors.ErrUnhandledRequestState, pr.GetState(), branch)
	}

	return status, nil
}

// Create files a new pull request
func (c *RealClient) Create(ctx context.Context, opts CreateOptions) (Status, error) {
	pr := &gogithub.NewPullRequest{
		Title: gogithub.String(opts.Title),
		Head:  gogithub.String(opts.Head),
		Base:  gogithub.String(opts.Base),
		Draft: gogithub.Bool(opts.Draft),
	}
	if opts.Body != "" {
		pr.Body = gogithub.String(opts.Body)
	}

	created, _, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, pr)
	if err != nil {
		return Status{}, fmt.Errorf("failed to create pull request: %w", err)
	}

	return Status{
		State:  StateOpen,
		Draft:  created.GetDraft(),
		Number: created.GetNumber(),
		Base:   created.GetBase().GetRef(),
		URL:    created.GetHTMLURL(),
	}, nil
}

// UpdateBase re-targets an existing pull request at a new base branch
func (c *RealClient) UpdateBase(ctx context.Context, number int, base string) error {
	update := &gogithub.PullRequest{
		Base: &gogithub.PullRequestBranch{
			Ref: gogithub.String(base),
		},
	}
	_, _, err := c.client.PullRequests.Edit(ctx, c.owner, c.repo, number, update)
	if err != nil {
		return fmt.Errorf("failed to update base of pull request #%d: %w", number, err)
	}
	return nil
}

// getToken gets a GitHub token from the environment or the gh CLI
func getToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	out, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		return "", fmt.Errorf("GITHUB_TOKEN not set and gh CLI unavailable: %w", err)
	}
	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}
	return token, nil
}
