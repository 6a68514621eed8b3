// Package app provides the application context for readmegen.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    FS       system.FileSystem      // Project file access
//	    Executor system.CommandExecutor // External license scans
//	    Prompter identity.Prompter      // Repository URL prompt
//	    Config   *config.Config         // Overrides .readmegen.toml when set
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	app := app.New()
//
//	// Testing with custom dependencies
//	app := app.New(
//	    app.WithFS(mockFS),
//	    app.WithPrompter(identity.StaticPrompter("https://github.com/acme/widget")),
//	)
//
// # Available Options
//
//	WithFS(fs)              // Custom file system
//	WithExecutor(exec)      // Custom command executor
//	WithPrompter(p)         // Custom URL prompter
//	WithConfig(cfg)         // Fixed configuration
package app
