// Package testutil provides test utilities for integration tests
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/readmegen/internal/app"
	"github.com/firefly-engineering/readmegen/internal/identity"
	"github.com/firefly-engineering/readmegen/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	Root     string
	Executor *system.MockExecutor
	App      *app.App
	cleanup  func()
}

// NewTestEnv creates a temporary project root whose .git/config has remoteURL
// as origin. An empty remoteURL creates no .git at all. The operator answer
// defaults to remoteURL; see SetAnswer.
func NewTestEnv(t *testing.T, remoteURL string) *TestEnv {
	t.Helper()

	root := filepath.Join(t.TempDir(), "widget")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create project root: %v", err)
	}

	env := &TestEnv{
		T:        t,
		Root:     root,
		Executor: system.NewMockExecutor(),
	}

	if remoteURL != "" {
		env.AddFile(".git/config", GitConfig(remoteURL))
	}

	env.SetAnswer(remoteURL)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(env.App)
	env.cleanup = func() {
		app.SetDefault(originalDefault)
	}

	return env
}

// GitConfig returns a minimal .git/config with an origin remote.
func GitConfig(remoteURL string) string {
	return fmt.Sprintf(`[core]
	repositoryformatversion = 0
	filemode = true
	bare = false
[remote "origin"]
	url = %s
	fetch = +refs/heads/*:refs/remotes/origin/*
`, remoteURL)
}

// SetAnswer rebuilds the App so the prompt answers url.
func (e *TestEnv) SetAnswer(url string) {
	e.App = app.New(
		app.WithFS(system.DefaultFS()),
		app.WithExecutor(e.Executor),
		app.WithPrompter(identity.StaticPrompter(url)),
	)
	if e.cleanup != nil {
		app.SetDefault(e.App)
	}
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// AddFile writes a file relative to the project root.
func (e *TestEnv) AddFile(name, content string) {
	e.T.Helper()

	path := filepath.Join(e.Root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", name, err)
	}
}

// AddFixture copies an embedded fixture into the project root as name.
func (e *TestEnv) AddFixture(fixture, name string) {
	e.T.Helper()

	data, err := LoadFixture(fixture)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", fixture, err)
	}
	e.AddFile(name, string(data))
}

// Readme returns the generated README.md and whether it exists.
func (e *TestEnv) Readme() (string, bool) {
	e.T.Helper()

	data, err := os.ReadFile(filepath.Join(e.Root, "README.md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false
		}
		e.T.Fatalf("Failed to read README.md: %v", err)
	}
	return string(data), true
}
