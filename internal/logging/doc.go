// Package logging provides logging utilities for readmegen.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Colored status lines for the operator
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("language detected", "file", name, "language", lang)
//	logging.Warn("license scan failed", "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators and colored
// with lipgloss when the output is a terminal:
//
//	logging.UserSuccess("README.md successfully generated in your repository!")
//	logging.UserPath("README.md generated at: %s", path)
//	logging.UserError("%s", msg)
//
// Output destinations:
//   - UserSuccess, UserPath: stdout
//   - UserWarning, UserError: stderr
//
// SetOutput redirects both streams, which the cobra command uses so tests
// can capture them.
//
// # Status Indicators
//
//   - ✓ (success, green)
//   - ⚠ (warning, yellow)
//   - ✗ (error, red)
package logging
