// Package catalog is an interactive showcase of every uikit widget.
package catalog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/uikit/internal/inputmask"
	"github.com/rileyhilliard/uikit/internal/logger"
	"github.com/rileyhilliard/uikit/internal/ui"
	"github.com/rileyhilliard/uikit/internal/util"
)

type pane int

const (
	paneList pane = iota
	paneStory
)

const (
	listWidth     = 30
	defaultWidth  = 100
	defaultHeight = 30
	headerHeight  = 4
	helpHeight    = 2
	maxEvents     = 4
)

// Input indexes on the input mask story.
const (
	inputPhone = iota
	inputDate
	inputSSN
)

// Options configures the catalog.
type Options struct {
	Theme       ui.Theme
	Version     string
	Placeholder rune
	AllowClear  bool
	PhoneMask   string
	DateMask    string
	Logger      logger.Logger
}

// eventLog keeps the last few change notifications for display.
type eventLog struct {
	lines []string
}

func (e *eventLog) add(line string) {
	e.lines = append(e.lines, line)
	if len(e.lines) > maxEvents {
		e.lines = e.lines[len(e.lines)-maxEvents:]
	}
}

// dateOwner owns the controlled date field. It accepts a change only when
// the month digits could still form 01-12.
type dateOwner struct {
	value      string
	pending    string
	hasPending bool
	rejected   int
}

func (o *dateOwner) onChange(_, raw string) {
	o.pending = raw
	o.hasPending = true
}

func validMonth(raw string) bool {
	switch {
	case raw == "":
		return true
	case raw[0] > '1':
		return false
	case len(raw) == 1:
		return true
	}
	month := int(raw[0]-'0')*10 + int(raw[1]-'0')
	return month >= 1 && month <= 12
}

// Model is the catalog's Bubble Tea model.
type Model struct {
	theme   ui.Theme
	version string
	keys    KeyMap
	help    help.Model
	list    list.Model

	viewport viewport.Model
	width    int
	height   int
	focus    pane
	quitting bool

	inputs     []inputmask.Model
	inputFocus int
	date       *dateOwner
	events     *eventLog

	button      ui.ButtonModel
	presses     int
	checks      ui.CheckboxGroup
	checkCursor int
	tipVisible  bool

	log logger.Logger
}

// New creates the catalog.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Placeholder == 0 {
		opts.Placeholder = '*'
	}
	if opts.PhoneMask == "" {
		opts.PhoneMask = "999-999-9999"
	}
	if opts.DateMask == "" {
		opts.DateMask = "99/99/9999"
	}
	if opts.Theme.Mode == "" {
		opts.Theme = ui.LightTheme()
	}

	events := &eventLog{}
	date := &dateOwner{}
	logChange := func(name string) func(masked, raw string) {
		return func(masked, raw string) {
			events.add(fmt.Sprintf("%s → %s (%q)", name, masked, raw))
		}
	}
	common := []inputmask.Option{
		inputmask.WithPlaceholder(opts.Placeholder),
		inputmask.WithTheme(opts.Theme),
		inputmask.WithLogger(opts.Logger),
	}

	phoneOpts := append([]inputmask.Option{
		inputmask.WithLabel("Phone"),
		inputmask.WithHelpText("Uncontrolled"),
		inputmask.WithOnChange(logChange("phone")),
	}, common...)
	if opts.AllowClear {
		phoneOpts = append(phoneOpts, inputmask.WithAllowClear())
	}

	dateOpts := append([]inputmask.Option{
		inputmask.WithValue(""),
		inputmask.WithLabel("Date"),
		inputmask.WithHelpText("Controlled: month must be 01-12"),
		inputmask.WithOnChange(func(masked, raw string) {
			logChange("date")(masked, raw)
			date.onChange(masked, raw)
		}),
	}, common...)

	ssnOpts := append([]inputmask.Option{
		inputmask.WithDefaultValue("123456789"),
		inputmask.WithLabel("SSN"),
		inputmask.WithHelpText("Disabled"),
		inputmask.WithDisabled(),
		inputmask.WithSize(ui.SizeSmall),
	}, common...)

	inputs := []inputmask.Model{
		inputPhone: inputmask.New(opts.PhoneMask, phoneOpts...),
		inputDate:  inputmask.New(opts.DateMask, dateOpts...),
		inputSSN:   inputmask.New("999-99-9999", ssnOpts...),
	}

	checks := ui.NewCheckboxGroup("Toppings", []ui.Checkbox{
		{Label: "Cheese", Value: "cheese"},
		{Label: "Basil", Value: "basil", Tooltip: "Fresh from the garden"},
		{Label: "Olives", Value: "olives"},
		{Label: "Anchovies", Value: "anchovies", Disabled: true},
	}, []string{"cheese"})
	checks.OnChange = func(values []string) {
		events.add("toppings → " + util.JoinOrNone(values))
	}

	l := list.New(Stories(), newDelegate(opts.Theme), listWidth, defaultHeight-headerHeight-helpHeight)
	l.Title = "Components"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	styleList(&l, opts.Theme)

	m := Model{
		theme:    opts.Theme,
		version:  opts.Version,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		list:     l,
		viewport: viewport.New(defaultWidth-listWidth-2, defaultHeight-headerHeight-helpHeight),
		width:    defaultWidth,
		height:   defaultHeight,
		inputs:   inputs,
		date:     date,
		events:   events,
		button:   ui.NewButtonModel(ui.Button{Label: "Save", Variant: ui.ButtonPrimary, PrefixIcon: "↓"}),
		checks:   checks,
		log:      opts.Logger,
	}
	return m
}

func newDelegate(t ui.Theme) list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(t.Foreground)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(t.Muted)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(t.Primary).
		BorderForeground(t.Focus)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(t.Muted).
		BorderForeground(t.Focus)
	return delegate
}

func styleList(l *list.Model, t ui.Theme) {
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(t.OnAccent).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the active theme.
func (m Model) Theme() ui.Theme { return m.theme }

// Current returns the story selected in the list.
func (m Model) Current() StoryID {
	if s, ok := m.list.SelectedItem().(story); ok {
		return s.id
	}
	return StoryInputMask
}

// InStory reports whether the selected story has focus.
func (m Model) InStory() bool { return m.focus == paneStory }

// Input returns one of the input mask story's fields.
func (m Model) Input(i int) inputmask.Model { return m.inputs[i] }

// Events returns the most recent change notifications, oldest first.
func (m Model) Events() []string {
	return append([]string(nil), m.events.lines...)
}

// Presses returns how many times the demo button was pressed.
func (m Model) Presses() int { return m.presses }

// Toppings returns the checked values of the checkbox story.
func (m Model) Toppings() []string { return m.checks.Value() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ui.ButtonPressedMsg:
		m.presses++
		m.events.add("pressed " + msg.Label)
		return m, m.button.SetLoading(true)
	}

	// Caret writes, clipboard reads and spinner ticks go to every component;
	// each one ignores messages addressed to another.
	return m.broadcast(msg)
}

func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.inputs)+1)
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.button, cmd = m.button.Update(msg)
	cmds = append(cmds, cmd)
	m.settleDate()
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(m.theme.Toggle())
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.focus == paneList {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Open):
			return m, m.openStory()
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Back) {
		m.closeStory()
		return m, nil
	}
	return m.handleStoryKey(msg)
}

func (m Model) handleStoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Current() {
	case StoryInputMask:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.cycleInput(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.cycleInput(-1)
		}
		var cmd tea.Cmd
		i := m.inputFocus
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		m.settleDate()
		return m, cmd

	case StoryButtons:
		if key.Matches(msg, m.keys.Toggle) && m.button.Button.Loading {
			m.button.SetLoading(false)
			return m, nil
		}
		var cmd tea.Cmd
		m.button, cmd = m.button.Update(msg)
		return m, cmd

	case StoryCheckboxes:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.checkCursor > 0 {
				m.checkCursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.checkCursor < len(m.checks.Options)-1 {
				m.checkCursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.checks.Toggle(m.checks.Options[m.checkCursor].Value)
		}
		return m, nil

	case StoryTooltip:
		if key.Matches(msg, m.keys.Toggle) {
			m.tipVisible = !m.tipVisible
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) openStory() tea.Cmd {
	m.focus = paneStory
	m.viewport.GotoTop()
	m.log.Debug("catalog: open %s", m.Current())
	switch m.Current() {
	case StoryInputMask:
		return m.inputs[m.inputFocus].Focus()
	case StoryButtons:
		m.button.Focus()
	}
	return nil
}

func (m *Model) closeStory() {
	m.focus = paneList
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.settleDate()
	m.button.Blur()
	m.tipVisible = false
}

// cycleInput moves focus to the next enabled field in direction step.
func (m *Model) cycleInput(step int) tea.Cmd {
	n := len(m.inputs)
	next := m.inputFocus
	for i := 0; i < n; i++ {
		next = (next + step + n) % n
		if !m.inputs[next].Disabled() {
			break
		}
	}
	if next == m.inputFocus {
		return nil
	}
	m.inputs[m.inputFocus].Blur()
	m.settleDate()
	m.inputFocus = next
	return m.inputs[next].Focus()
}

// settleDate plays the owner of the controlled date field: it feeds the
// accepted value back, or the previous one when the change is rejected.
func (m *Model) settleDate() {
	if !m.date.hasPending {
		return
	}
	m.date.hasPending = false
	if validMonth(m.date.pending) {
		m.date.value = m.date.pending
	} else {
		m.date.rejected++
		m.events.add(fmt.Sprintf("date ✗ rejected %q", m.date.pending))
	}
	if err := m.inputs[inputDate].SetValue(m.date.value); err != nil {
		m.log.Warn("catalog: %v", err)
	}
}

func (m *Model) setTheme(t ui.Theme) {
	m.theme = t
	for i := range m.inputs {
		m.inputs[i].SetTheme(t)
	}
	m.list.SetDelegate(newDelegate(t))
	styleList(&m.list, t)
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	bodyHeight := h - headerHeight - helpHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.list.SetSize(listWidth, bodyHeight)
	storyWidth := w - listWidth - 2
	if storyWidth < 1 {
		storyWidth = 1
	}
	m.viewport.Width = storyWidth
	m.viewport.Height = bodyHeight
	m.help.Width = w
}
