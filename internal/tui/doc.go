// Package tui provides terminal user interface components for readmegen.
//
// This package uses the Bubble Tea framework for the repository URL prompt.
//
// # URL Prompt
//
// The prompt asks for the repository URL and re-asks until the answer passes
// identity.ValidateShape:
//
//	url, err := tui.NewURLPrompter().PromptURL(ctx)
//	if errors.Is(err, rgerrors.ErrPromptCancelled) {
//	    // Ctrl+C or Esc
//	}
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
