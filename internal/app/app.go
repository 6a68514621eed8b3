// Package app provides the application context for readmegen.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/readmegen/internal/config"
	"github.com/firefly-engineering/readmegen/internal/identity"
	"github.com/firefly-engineering/readmegen/internal/logging"
	"github.com/firefly-engineering/readmegen/internal/system"
	"github.com/firefly-engineering/readmegen/internal/tui"
)

// App holds the application dependencies
type App struct {
	// FS reads project files and writes the README
	FS system.FileSystem

	// Executor runs external scanners
	Executor system.CommandExecutor

	// Prompter asks the operator for the repository URL
	Prompter identity.Prompter

	// Config, when set, is used instead of the project's .readmegen.toml
	Config *config.Config
}

// Option is a function that configures the App
type Option func(*App)

// WithFS sets a custom file system
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithPrompter sets a custom URL prompter
func WithPrompter(p identity.Prompter) Option {
	return func(a *App) {
		a.Prompter = p
	}
}

// WithConfig sets a fixed configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// New creates a new App with the given options.
// Unset dependencies fall back to the OS implementations and the terminal prompt.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Executor == nil {
		app.Executor = system.DefaultExecutor()
	}
	if app.Prompter == nil {
		app.Prompter = tui.NewURLPrompter()
	}

	return app
}

// LoadConfig returns the fixed configuration if one was provided, otherwise
// the project's .readmegen.toml (or defaults when absent).
func (a *App) LoadConfig(root string) (*config.Config, error) {
	if a.Config != nil {
		return a.Config, nil
	}
	cfg, err := config.Load(a.FS, root)
	if err != nil {
		return nil, err
	}
	logging.Debug("loaded project configuration",
		"layout", cfg.Render.Layout,
		"scanner", cfg.License.Scanner,
		"prefer_manifest", cfg.License.PreferManifest)
	return cfg, nil
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
