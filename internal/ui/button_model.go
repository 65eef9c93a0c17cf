package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames defines the custom animation frames (◐ ◓ ◑ ◒) used by
// loading buttons, matching the static SymbolProgress glyph.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// ButtonPressedMsg is emitted when a focused, interactive button is pressed.
type ButtonPressedMsg struct {
	Label string
}

var buttonPressKeys = key.NewBinding(
	key.WithKeys("enter", " "),
	key.WithHelp("enter/space", "press"),
)

// ButtonModel is a Bubble Tea model around Button. It animates the loading
// spinner and turns enter/space into ButtonPressedMsg while focused.
type ButtonModel struct {
	Button  Button
	spinner spinner.Model
	focused bool
}

// NewButtonModel creates a model for the given button.
func NewButtonModel(b Button) ButtonModel {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames

	return ButtonModel{
		Button:  b,
		spinner: sp,
	}
}

// Init starts the spinner when the button is created in a loading state.
func (m ButtonModel) Init() tea.Cmd {
	if m.Button.Loading {
		return m.spinner.Tick
	}
	return nil
}

// SetLoading toggles the loading state. Turning it on restarts the spinner.
func (m *ButtonModel) SetLoading(loading bool) tea.Cmd {
	m.Button.Loading = loading
	if loading {
		return m.spinner.Tick
	}
	return nil
}

// Focus makes the button respond to enter/space.
func (m *ButtonModel) Focus() {
	m.focused = true
}

// Blur stops the button from responding to keys.
func (m *ButtonModel) Blur() {
	m.focused = false
}

// Focused reports whether the button has focus.
func (m ButtonModel) Focused() bool {
	return m.focused
}

// Update handles spinner ticks and key presses.
func (m ButtonModel) Update(msg tea.Msg) (ButtonModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.Button.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.focused && m.Button.Interactive() && key.Matches(msg, buttonPressKeys) {
			label := m.Button.Label
			return m, func() tea.Msg { return ButtonPressedMsg{Label: label} }
		}
	}
	return m, nil
}

// View renders the button, marking it when focused.
func (m ButtonModel) View(t Theme) string {
	b := m.Button
	if b.Loading {
		b.LoadingFrame = m.spinner.View()
	}
	marker := "  "
	if m.focused {
		marker = "▸ "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, marker, b.Render(t))
}
