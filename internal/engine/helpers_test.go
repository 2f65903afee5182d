package engine_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitstack.dev/gitstack/internal/engine"
	"gitstack.dev/gitstack/internal/github"
	"gitstack.dev/gitstack/internal/tui"
	"gitstack.dev/gitstack/testhelpers"
)

var errTest = errors.New("test error")

// writeRegistry writes a parent mapping to a temp registry file and loads it
func writeRegistry(t *testing.T, parents map[string]string) *engine.Registry {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".gitstack")
	if parents != nil {
		data, err := json.Marshal(parents)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}

	reg, err := engine.LoadRegistry(path)
	require.NoError(t, err)
	return reg
}

type testEngine struct {
	*engine.Engine
	git      *testhelpers.MockGit
	requests *testhelpers.MockRequests
	prompter *testhelpers.ScriptedPrompter
	registry *engine.Registry
	out      *bytes.Buffer
}

// newTestEngine wires an engine against scripted collaborators
func newTestEngine(t *testing.T, git *testhelpers.MockGit, parents map[string]string) *testEngine {
	t.Helper()

	registry := writeRegistry(t, parents)
	requests := testhelpers.NewMockRequests()
	prompter := &testhelpers.ScriptedPrompter{}
	out := &bytes.Buffer{}

	eng, err := engine.New(engine.Options{
		Git:             git,
		Registry:        registry,
		Requests:        requests,
		Prompter:        prompter,
		Splog:           tui.NewSplogTo(out),
		TrunkCandidates: []string{"main", "master"},
	})
	require.NoError(t, err)

	return &testEngine{
		Engine:   eng,
		git:      git,
		requests: requests,
		prompter: prompter,
		registry: registry,
		out:      out,
	}
}

func openStatus(draft bool, number int, base string) github.Status {
	return github.Status{
		State:  github.StateOpen,
		Draft:  draft,
		Number: number,
		Base:   base,
	}
}
