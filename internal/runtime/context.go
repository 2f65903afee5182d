// Package runtime builds the per-invocation context: configuration, the
// repository collaborator, the registry, and the engine, wired together once
// per command.
package runtime

import (
	"context"
	"path/filepath"

	"gitstack.dev/gitstack/internal/config"
	"gitstack.dev/gitstack/internal/engine"
	"gitstack.dev/gitstack/internal/git"
	"gitstack.dev/gitstack/internal/github"
	"gitstack.dev/gitstack/internal/tui"
)

// Context provides access to the engine and collaborators for commands
type Context struct {
	Engine   *engine.Engine
	Repo     *git.Repo
	Splog    *tui.Splog
	RepoRoot string
}

// GetContext opens the repository, loads the registry, and constructs the
// engine. The change-request client is optional: without a token the nav and
// print commands still work, and sync/submit report the missing client.
func GetContext(ctx context.Context) (*Context, error) {
	cfg := config.Load()

	repo, err := git.Open(".")
	if err != nil {
		return nil, err
	}

	registry, err := engine.LoadRegistry(filepath.Join(repo.Root(), cfg.StackFile))
	if err != nil {
		return nil, err
	}

	var requests github.Client
	if remoteURL, err := repo.RemoteURL(); err == nil {
		if client, err := github.NewRealClient(ctx, remoteURL); err == nil {
			requests = client
		}
	}

	splog, err := tui.NewSplogWithFile(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	splog.Debug("registry %s, trunk candidates %v", cfg.StackFile, cfg.TrunkCandidates)

	eng, err := engine.New(engine.Options{
		Git:             repo,
		Registry:        registry,
		Requests:        requests,
		Prompter:        tui.NewSurveyPrompter(),
		Splog:           splog,
		TrunkCandidates: cfg.TrunkCandidates,
	})
	if err != nil {
		return nil, err
	}

	return &Context{
		Engine:   eng,
		Repo:     repo,
		Splog:    splog,
		RepoRoot: repo.Root(),
	}, nil
}
