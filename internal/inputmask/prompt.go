package inputmask

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/uikit/internal/errors"
)

// ErrCancelled is returned by Prompt when the user presses esc or ctrl+c.
var ErrCancelled = errors.New(errors.ErrInput, "Input cancelled", "")

var (
	submitKey = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	)
	cancelKey = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)
)

// PromptResult is what the user submitted.
type PromptResult struct {
	Masked   string
	Raw      string
	Complete bool // Every digit slot is filled
}

// PromptModel runs a single masked input as a full program.
type PromptModel struct {
	input     Model
	title     string
	help      help.Model
	initCmd   tea.Cmd
	submitted bool
	cancelled bool
}

// NewPromptModel creates a prompt around a focused input.
func NewPromptModel(title, pattern string, opts ...Option) PromptModel {
	in := New(pattern, opts...)
	cmd := in.Focus()
	return PromptModel{
		input:   in,
		title:   title,
		help:    help.New(),
		initCmd: cmd,
	}
}

// Init places the caret once the field is drawn.
func (m PromptModel) Init() tea.Cmd {
	return m.initCmd
}

// Update implements tea.Model.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !msg.Paste {
		switch {
		case key.Matches(msg, submitKey):
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		case key.Matches(msg, cancelKey):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PromptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	t := m.input.theme
	keys := append([]key.Binding{submitKey, cancelKey}, m.input.KeyMap().ShortHelp()...)
	parts := []string{}
	if m.title != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(m.title))
	}
	parts = append(parts, m.input.View(), m.help.ShortHelpView(keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

// Result returns the submitted value and whether the prompt was submitted.
func (m PromptModel) Result() (PromptResult, bool) {
	if !m.submitted {
		return PromptResult{}, false
	}
	raw := m.input.RawValue()
	return PromptResult{
		Masked:   m.input.MaskedValue(),
		Raw:      raw,
		Complete: len(raw) == m.input.Capacity(),
	}, true
}

// Prompt asks for a single masked value on stdin/stdout.
func Prompt(title, pattern string, opts ...Option) (PromptResult, error) {
	return PromptWithOutput(title, pattern, os.Stdout, os.Stdin, opts...)
}

// PromptWithOutput is Prompt using custom I/O.
func PromptWithOutput(title, pattern string, output io.Writer, input io.Reader, opts ...Option) (PromptResult, error) {
	model := NewPromptModel(title, pattern, opts...)

	p := tea.NewProgram(
		model,
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PromptResult{}, errors.WrapWithCode(err, errors.ErrTerminal,
			"Masked input failed", "Try again, or pipe values to 'uikit mask format' instead.")
	}

	if m, ok := finalModel.(PromptModel); ok {
		if res, ok := m.Result(); ok {
			return res, nil
		}
	}
	return PromptResult{}, ErrCancelled
}
