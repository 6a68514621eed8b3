package cmd

import (
	"github.com/firefly-engineering/readmegen/internal/app"
	"github.com/firefly-engineering/readmegen/internal/logging"
)

// application returns the application context.
// This is a helper to keep commands independent of the app package layout.
func application() *app.App {
	return app.Default
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logSuccess = logging.UserSuccess
	logPath    = logging.UserPath
	logError   = logging.UserError
)
