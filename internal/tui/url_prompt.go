package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	rgerrors "github.com/firefly-engineering/readmegen/internal/errors"
	"github.com/firefly-engineering/readmegen/internal/identity"
)

// PromptMessage is the question shown above the URL input.
const PromptMessage = "Enter the Git repository URL:"

var (
	promptQuestionStyle = lipgloss.NewStyle().
				Bold(true)

	promptMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	promptErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9"))

	promptAnswerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))
)

// urlPromptModel asks for a repository URL until it passes the shape check.
type urlPromptModel struct {
	input     textinput.Model
	errMsg    string
	value     string
	done      bool
	cancelled bool
}

func newURLPromptModel() urlPromptModel {
	ti := textinput.New()
	ti.Placeholder = "https://github.com/owner/repo.git"
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return urlPromptModel{input: ti}
}

func (m urlPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m urlPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if err := identity.ValidateShape(value); err != nil {
				m.errMsg = identity.InvalidURLMessage
				return m, nil
			}
			m.value = value
			m.done = true
			m.input.Blur()
			return m, tea.Quit
		}
		// Typing again clears the previous validation message.
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m urlPromptModel) View() string {
	var sb strings.Builder

	sb.WriteString(promptMarkStyle.Render("?"))
	sb.WriteString(" ")
	sb.WriteString(promptQuestionStyle.Render(PromptMessage))
	sb.WriteString(" ")

	if m.done {
		sb.WriteString(promptAnswerStyle.Render(m.value))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.errMsg != "" {
		sb.WriteString(promptErrorStyle.Render(">> " + m.errMsg))
		sb.WriteString("\n")
	}
	return sb.String()
}

// URLPrompter asks for the repository URL on the terminal.
type URLPrompter struct {
	in  io.Reader
	out io.Writer
}

// URLPrompterOption configures a URLPrompter.
type URLPrompterOption func(*URLPrompter)

// WithInput reads keystrokes from r instead of the terminal.
func WithInput(r io.Reader) URLPrompterOption {
	return func(p *URLPrompter) {
		p.in = r
	}
}

// WithOutput renders the prompt to w instead of the terminal.
func WithOutput(w io.Writer) URLPrompterOption {
	return func(p *URLPrompter) {
		p.out = w
	}
}

// NewURLPrompter creates a terminal URL prompter.
func NewURLPrompter(opts ...URLPrompterOption) *URLPrompter {
	p := &URLPrompter{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PromptURL runs the prompt and returns the accepted URL.
// Ctrl+C, Esc or a cancelled context return a PromptCancelled error.
func (p *URLPrompter) PromptURL(ctx context.Context) (string, error) {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.in != nil {
		progOpts = append(progOpts, tea.WithInput(p.in))
	}
	if p.out != nil {
		progOpts = append(progOpts, tea.WithOutput(p.out))
	}

	finalModel, err := tea.NewProgram(newURLPromptModel(), progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return "", rgerrors.PromptCancelled()
		}
		return "", err
	}

	m := finalModel.(urlPromptModel)
	if m.cancelled || !m.done {
		return "", rgerrors.PromptCancelled()
	}
	return m.value, nil
}
