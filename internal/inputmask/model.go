// Package inputmask provides a Bubble Tea text field that formats digits
// through a fixed mask such as "999-999-9999".
package inputmask

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/rileyhilliard/uikit/internal/logger"
	"github.com/rileyhilliard/uikit/internal/mask"
	"github.com/rileyhilliard/uikit/internal/ui"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// caretMsg applies the caret intent recorded by a mutation. It is delivered
// after the update that produced it has been rendered.
type caretMsg struct {
	id  int
	seq int
}

// Model is a masked input field. The displayed text is always the masked
// value; RawValue returns the digits behind it.
type Model struct {
	id          int
	maskSource  string
	pattern     mask.Pattern
	placeholder rune
	src         source

	caret      int
	pending    mask.Intent
	hasPending bool
	caretSeq   int

	focused    bool
	disabled   bool
	readOnly   bool
	allowClear bool
	detached   bool

	label    string
	helpText string
	prefix   string
	suffix   string
	size     ui.Size
	status   ui.Status
	theme    ui.Theme
	keys     KeyMap

	onChange func(masked, raw string)
	onClear  func()
	onFocus  func()
	onBlur   func()

	log logger.Logger
}

// New creates a masked input for the given pattern. Without WithValue the
// input is uncontrolled and owns its value.
func New(pattern string, opts ...Option) Model {
	m := Model{
		id:          nextID(),
		maskSource:  pattern,
		pattern:     mask.Parse(pattern),
		placeholder: mask.DefaultPlaceholder,
		src:         ownedSource{},
		size:        ui.SizeMedium,
		status:      ui.StatusDefault,
		theme:       ui.LightTheme(),
		keys:        DefaultKeyMap(),
		log:         logger.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.src = m.normalize(m.src)
	m.caret = m.pattern.FirstEmpty(len(m.src.raw()))
	m.log.Debug("inputmask %d: mask %q, controlled=%t", m.id, pattern, m.src.controlled())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ID returns the unique id that routes caret and clipboard messages.
func (m Model) ID() int { return m.id }

// RawValue returns the digits currently shown.
func (m Model) RawValue() string { return m.src.raw() }

// MaskedValue returns the display string.
func (m Model) MaskedValue() string { return m.result().Masked }

// Mask returns the mask pattern string.
func (m Model) Mask() string { return m.maskSource }

// Capacity returns the number of digit slots in the mask.
func (m Model) Capacity() int { return m.pattern.Capacity() }

// Caret returns the caret offset, in runes, into the masked value.
func (m Model) Caret() int { return m.caret }

// Focused reports whether the input has focus.
func (m Model) Focused() bool { return m.focused }

// Controlled reports whether the owner feeds the value through SetValue.
func (m Model) Controlled() bool { return m.src.controlled() }

// Disabled reports whether the input ignores interaction.
func (m Model) Disabled() bool { return m.disabled }

// KeyMap returns the active key bindings, for help views.
func (m Model) KeyMap() KeyMap { return m.keys }

// SetTheme swaps the palette used by View.
func (m *Model) SetTheme(t ui.Theme) { m.theme = t }

// SetStatus changes the validation status.
func (m *Model) SetStatus(s ui.Status) { m.status = s }

// Focus gives the input focus and moves the caret to the first empty digit
// slot once the field has been drawn.
func (m *Model) Focus() tea.Cmd {
	if m.disabled {
		return nil
	}
	if !m.focused {
		m.focused = true
		if m.onFocus != nil {
			m.onFocus()
		}
	}
	return m.scheduleCaret(mask.FocusIntent())
}

// Blur removes focus, re-masks the current value and reports it.
func (m *Model) Blur() {
	if !m.focused {
		return
	}
	m.flushCaret()
	m.focused = false
	res := m.result()
	m.notify(res)
	if m.onBlur != nil {
		m.onBlur()
	}
}

// Click focuses the input and places the caret at offset without snapping.
// A negative offset behaves like Focus.
func (m *Model) Click(offset int) tea.Cmd {
	if m.disabled {
		return nil
	}
	if !m.focused {
		m.focused = true
		if m.onFocus != nil {
			m.onFocus()
		}
	}
	return m.scheduleCaret(mask.ClickIntent(offset))
}

// Clear empties the value, reports the all-placeholder mask and returns focus
// to the input.
func (m *Model) Clear() tea.Cmd {
	if m.disabled {
		return nil
	}
	res := m.pattern.Fill("", m.placeholder)
	m.src = m.src.accept(res.Raw)
	m.notify(res)
	if m.onClear != nil {
		m.onClear()
	}
	return m.Focus()
}

// SetValue feeds a new value into a controlled input. The value is filtered
// to digits and truncated to the mask's capacity. Calling it on an
// uncontrolled input is an error; the mode is fixed at construction.
func (m *Model) SetValue(raw string) error {
	if !m.src.controlled() {
		return errors.New(errors.ErrInput,
			"Cannot set the value of an uncontrolled masked input",
			"Create it with WithValue to own its value")
	}
	m.src = m.normalize(externalSource{value: raw})
	m.caret = clampCaret(m.caret, m.pattern.Len())
	return nil
}

// SetMask changes the mask pattern. The current value is re-masked; digits
// beyond the new capacity are dropped.
func (m *Model) SetMask(pattern string) {
	if pattern == m.maskSource {
		return
	}
	m.maskSource = pattern
	m.pattern = mask.Parse(pattern)
	m.src = m.normalize(m.src)
	m.caret = clampCaret(m.caret, m.pattern.Len())
	m.log.Debug("inputmask %d: mask changed to %q", m.id, pattern)
}

// Detach marks the input as gone. Caret writes still in flight are dropped.
func (m *Model) Detach() {
	m.detached = true
	m.hasPending = false
}

// Update handles key, paste and caret messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case caretMsg:
		if msg.id != m.id {
			return m, nil
		}
		if m.detached {
			m.log.Debug("inputmask %d: caret write after detach ignored", m.id)
			return m, nil
		}
		if msg.seq != m.caretSeq {
			return m, nil
		}
		m.flushCaret()
		return m, nil

	case pasteMsg:
		if msg.id != m.id || m.disabled || m.readOnly || !m.focused {
			return m, nil
		}
		m.flushCaret()
		return m, m.paste(msg.text)

	case pasteErrMsg:
		if msg.id == m.id {
			m.log.Warn("inputmask %d: clipboard read failed: %v", m.id, msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.disabled || !m.focused {
			return m, nil
		}
		m.flushCaret()
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Paste {
		if m.readOnly {
			return m, nil
		}
		return m, m.paste(string(msg.Runes))
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.caret = clampCaret(m.caret-1, m.pattern.Len())
	case key.Matches(msg, m.keys.Right):
		m.caret = clampCaret(m.caret+1, m.pattern.Len())
	case key.Matches(msg, m.keys.Home):
		m.caret = 0
	case key.Matches(msg, m.keys.End):
		m.caret = m.pattern.Len()
	case key.Matches(msg, m.keys.Backspace):
		return m, m.backspace()
	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteForward()
	case key.Matches(msg, m.keys.Paste):
		if m.readOnly {
			return m, nil
		}
		return m, readClipboard(m.id)
	case key.Matches(msg, m.keys.Clear):
		if !m.allowClear || m.readOnly {
			return m, nil
		}
		return m, m.Clear()
	case msg.Type == tea.KeyRunes:
		return m, m.insert(msg.Runes)
	}
	return m, nil
}

// insert types digits at the caret. Everything else is dropped.
func (m *Model) insert(runes []rune) tea.Cmd {
	if m.readOnly {
		return nil
	}
	raw := m.src.raw()
	pos := m.caret
	var intent mask.Intent
	typed := false
	for _, r := range runes {
		if r < '0' || r > '9' {
			continue
		}
		idx, ok := m.pattern.InsertIndex(pos, len(raw))
		if !ok {
			break
		}
		raw = raw[:idx] + string(r) + raw[idx:]
		if len(raw) > m.pattern.Capacity() {
			raw = raw[:m.pattern.Capacity()]
		}
		intent = m.pattern.AfterInsert(idx)
		pos = m.pattern.Caret(intent, len(raw))
		typed = true
	}
	if !typed {
		return nil
	}
	return m.commit(m.pattern.Fill(raw, m.placeholder), intent)
}

func (m *Model) backspace() tea.Cmd {
	if m.readOnly {
		return nil
	}
	raw := m.src.raw()
	e := m.pattern.Backspace(m.caret, len(raw))
	if e.Suppress {
		m.caret = e.Caret
		return nil
	}
	return m.commit(m.pattern.Fill(removeAt(raw, e.DigitIndex), m.placeholder), mask.MoveIntent(e.Caret))
}

func (m *Model) deleteForward() tea.Cmd {
	if m.readOnly {
		return nil
	}
	raw := m.src.raw()
	e := m.pattern.Delete(m.caret, len(raw))
	if e.Suppress {
		m.caret = e.Caret
		return nil
	}
	return m.commit(m.pattern.Fill(removeAt(raw, e.DigitIndex), m.placeholder), mask.MoveIntent(e.Caret))
}

// paste replaces the value with the digits found in text. Pasted text may
// already carry the mask's literal digits ("+1 555..."), so it goes through
// Apply, which matches them against the literal slots.
func (m *Model) paste(text string) tea.Cmd {
	digits := mask.Digits(text)
	if digits == "" {
		m.log.Debug("inputmask %d: paste without digits ignored", m.id)
		return nil
	}
	return m.commit(m.pattern.Apply(digits, m.placeholder), mask.PasteIntent())
}

// commit stores the formatted value, reports the change and schedules the caret.
func (m *Model) commit(res mask.Result, intent mask.Intent) tea.Cmd {
	m.src = m.src.accept(res.Raw)
	m.notify(res)
	return m.scheduleCaret(intent)
}

func (m *Model) notify(res mask.Result) {
	if m.onChange != nil {
		m.onChange(res.Masked, res.Raw)
	}
}

// scheduleCaret records the intent and returns the command that applies it.
// A later call supersedes any caret write still in flight.
func (m *Model) scheduleCaret(in mask.Intent) tea.Cmd {
	m.caretSeq++
	m.pending = in
	m.hasPending = true
	id, seq := m.id, m.caretSeq
	return func() tea.Msg {
		return caretMsg{id: id, seq: seq}
	}
}

// flushCaret resolves a pending intent against the current value. It runs
// when the caret message arrives and before any new input is handled.
func (m *Model) flushCaret() {
	if !m.hasPending {
		return
	}
	m.caret = m.pattern.Caret(m.pending, len(m.src.raw()))
	m.hasPending = false
	m.log.Debug("inputmask %d: caret %s -> %d", m.id, m.pending.Kind, m.caret)
}

func (m Model) result() mask.Result {
	return m.pattern.Fill(m.src.raw(), m.placeholder)
}

// normalize reduces the values held by s to digits that fit the mask.
func (m Model) normalize(s source) source {
	fit := func(raw string) string {
		return m.pattern.Fill(raw, m.placeholder).Raw
	}
	switch s := s.(type) {
	case externalSource:
		return externalSource{value: fit(s.value), echo: fit(s.echo), echoing: s.echoing}
	case ownedSource:
		return ownedSource{value: fit(s.value)}
	default:
		return ownedSource{}
	}
}

// View renders the label, the framed field and the help text.
func (m Model) View() string {
	t := m.theme
	res := m.result()

	value := m.renderValue(res)
	if m.prefix != "" {
		value = t.AffixStyle().Render(m.prefix) + " " + value
	}
	if m.suffix != "" {
		value = value + " " + t.AffixStyle().Render(m.suffix)
	}
	if m.allowClear && res.Raw != "" && !m.disabled {
		value = value + " " + t.ClearStyle().Render(ui.SymbolClear)
	}

	parts := make([]string, 0, 3)
	if m.label != "" {
		parts = append(parts, t.LabelStyle().Render(m.label))
	}
	parts = append(parts, t.FieldStyle(m.size, m.status, m.focused, m.disabled).Render(value))
	if m.helpText != "" {
		help := t.HelpStyle()
		if m.status != ui.StatusDefault {
			help = help.Foreground(t.StatusColor(m.status))
		}
		parts = append(parts, help.Render(m.helpText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderValue draws the masked value with empty slots dimmed and, when
// focused, the caret cell highlighted.
func (m Model) renderValue(res mask.Result) string {
	t := m.theme
	empty := lipgloss.NewStyle().Foreground(t.Subtle)
	showCaret := m.focused && !m.disabled

	var b strings.Builder
	filled := len(res.Raw)
	for i, r := range []rune(res.Masked) {
		cell := string(r)
		slot, _ := m.pattern.Slot(i)
		switch {
		case showCaret && i == m.caret:
			cell = t.CaretStyle().Render(cell)
		case !slot.IsLiteral() && m.pattern.DigitsBefore(i) >= filled:
			cell = empty.Render(cell)
		}
		b.WriteString(cell)
	}
	if showCaret && m.caret >= m.pattern.Len() {
		b.WriteString(t.CaretStyle().Render(" "))
	}
	return b.String()
}

func removeAt(raw string, idx int) string {
	if idx < 0 || idx >= len(raw) {
		return raw
	}
	return raw[:idx] + raw[idx+1:]
}

func clampCaret(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}
