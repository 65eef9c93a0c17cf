package inputmask

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/rileyhilliard/uikit/internal/logger"
	"github.com/rileyhilliard/uikit/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "999-999-9999"

type change struct {
	masked string
	raw    string
}

// recorder collects change notifications.
type recorder struct {
	changes []change
}

func (r *recorder) onChange(masked, raw string) {
	r.changes = append(r.changes, change{masked, raw})
}

func (r *recorder) last() change {
	if len(r.changes) == 0 {
		return change{}
	}
	return r.changes[len(r.changes)-1]
}

// plainColors renders without ANSI sequences for the rest of the test and
// restores the previous profile afterwards.
func plainColors(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	ui.DisableColors()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func newModel(opts ...Option) Model {
	return New(phone, append([]Option{WithLogger(logger.Noop())}, opts...)...)
}

// deliver runs cmd and feeds its message back, like the event loop would.
func deliver(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	m, _ = m.Update(cmd())
	return m
}

// focusedAt returns m focused with its caret settled at offset.
func focusedAt(t *testing.T, m Model, offset int) Model {
	t.Helper()
	m = deliver(m, m.Click(offset))
	require.Equal(t, offset, m.Caret())
	return m
}

func typeKeys(m Model, s string) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantRaw    string
		wantMasked string
	}{
		{"empty", nil, "", "***-***-****"},
		{"digits", []Option{WithDefaultValue("1234567890")}, "1234567890", "123-456-7890"},
		{"partial", []Option{WithDefaultValue("123")}, "123", "123-***-****"},
		{"formatted default", []Option{WithDefaultValue("123-456-7890")}, "1234567890", "123-456-7890"},
		{"overflow truncated", []Option{WithDefaultValue("123456789012")}, "1234567890", "123-456-7890"},
		{"custom placeholder", []Option{WithPlaceholder('_')}, "", "___-___-____"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(tt.opts...)
			assert.Equal(t, tt.wantRaw, m.RawValue())
			assert.Equal(t, tt.wantMasked, m.MaskedValue())
			assert.False(t, m.Controlled())
		})
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := newModel()
	b := newModel()
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNew_LastValueOptionWins(t *testing.T) {
	m := newModel(WithValue("1"), WithDefaultValue("2"))
	assert.False(t, m.Controlled())
	assert.Equal(t, "2", m.RawValue())

	m = newModel(WithDefaultValue("2"), WithValue("1"))
	assert.True(t, m.Controlled())
	assert.Equal(t, "1", m.RawValue())
}

func TestFocus_CaretPlacement(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"partial", "123", 3},
		{"full", "1234567890", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var focusCalls int
			m := newModel(WithDefaultValue(tt.value), WithOnFocus(func() { focusCalls++ }))
			cmd := m.Focus()
			require.NotNil(t, cmd)
			assert.True(t, m.Focused())
			m = deliver(m, cmd)
			assert.Equal(t, tt.want, m.Caret())
			assert.Equal(t, 1, focusCalls)
		})
	}
}

func TestFocus_Disabled(t *testing.T) {
	m := newModel(WithDisabled())
	assert.Nil(t, m.Focus())
	assert.False(t, m.Focused())
}

func TestClick_PassThrough(t *testing.T) {
	m := newModel(WithDefaultValue("1234567"))
	m = deliver(m, m.Click(3))
	assert.Equal(t, 3, m.Caret(), "clicks land on literals without snapping")

	m = deliver(m, m.Click(99))
	assert.Equal(t, 12, m.Caret())

	m = deliver(m, m.Click(-1))
	assert.Equal(t, 9, m.Caret(), "a click without target behaves like focus")
}

func TestTyping(t *testing.T) {
	rec := &recorder{}
	m := newModel(WithOnChange(rec.onChange))
	m = deliver(m, m.Focus())

	for _, d := range "1234" {
		var cmd tea.Cmd
		m, cmd = typeKeys(m, string(d))
		m = deliver(m, cmd)
	}

	assert.Equal(t, "1234", m.RawValue())
	assert.Equal(t, "123-4**-****", m.MaskedValue())
	assert.Equal(t, 5, m.Caret())
	require.Len(t, rec.changes, 4)
	assert.Equal(t, change{"123-***-****", "123"}, rec.changes[2])
	assert.Equal(t, change{"123-4**-****", "1234"}, rec.last())
}

func TestTyping_SkipsLiteralAfterGroup(t *testing.T) {
	m := newModel(WithDefaultValue("12"))
	m = focusedAt(t, m, 2)

	m, cmd := typeKeys(m, "3")
	m = deliver(m, cmd)
	assert.Equal(t, 4, m.Caret(), "caret steps past the dash")
}

func TestTyping_MaskWithDigitLiterals(t *testing.T) {
	rec := &recorder{}
	m := New("+1 (999) 999-9999", WithLogger(logger.Noop()), WithOnChange(rec.onChange))
	m = deliver(m, m.Focus())
	require.Equal(t, 4, m.Caret())

	for _, r := range "1555123" {
		var cmd tea.Cmd
		m, cmd = typeKeys(m, string(r))
		m = deliver(m, cmd)
	}

	assert.Equal(t, "1555123", m.RawValue())
	assert.Equal(t, "+1 (155) 512-3***", m.MaskedValue())
	assert.Equal(t, change{"+1 (155) 512-3***", "1555123"}, rec.last())
	assert.Equal(t, 14, m.Caret())

	m, cmd := press(m, tea.KeyBackspace)
	m = deliver(m, cmd)
	assert.Equal(t, "155512", m.RawValue())
	assert.Equal(t, "+1 (155) 512-****", m.MaskedValue())
	assert.Equal(t, 13, m.Caret())
}

func TestTyping_FirstDigitMatchesLiteral(t *testing.T) {
	m := New("+1 999", WithLogger(logger.Noop()))
	m = deliver(m, m.Focus())

	m, cmd := typeKeys(m, "1")
	m = deliver(m, cmd)

	assert.Equal(t, "1", m.RawValue())
	assert.Equal(t, "+1 1**", m.MaskedValue())
	assert.Equal(t, 4, m.Caret())
}

func TestDefaultValue_DigitLiteralsKept(t *testing.T) {
	m := New("99/99/2099", WithLogger(logger.Noop()), WithDefaultValue("01022"))

	assert.Equal(t, "01022", m.RawValue())
	assert.Equal(t, "01/02/202*", m.MaskedValue())
}

func TestPaste_LeadingCountryCodeMatchesLiteral(t *testing.T) {
	m := New("+1 (999) 999-9999", WithLogger(logger.Noop()))
	m = deliver(m, m.Focus())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+1 555 123 4567"), Paste: true})
	m = deliver(m, cmd)

	assert.Equal(t, "5551234567", m.RawValue())
	assert.Equal(t, "+1 (555) 123-4567", m.MaskedValue())
}

func TestTyping_BurstOfRunes(t *testing.T) {
	m := newModel()
	m = deliver(m, m.Focus())

	m, cmd := typeKeys(m, "12345")
	m = deliver(m, cmd)
	assert.Equal(t, "12345", m.RawValue())
	assert.Equal(t, 6, m.Caret())
}

func TestTyping_NonDigitsFiltered(t *testing.T) {
	rec := &recorder{}
	m := newModel(WithDefaultValue("12"), WithOnChange(rec.onChange))
	m = deliver(m, m.Focus())

	m, cmd := typeKeys(m, "a-")
	assert.Nil(t, cmd)
	assert.Equal(t, "12", m.RawValue())
	assert.Empty(t, rec.changes)

	m, cmd = typeKeys(m, "x7y")
	m = deliver(m, cmd)
	assert.Equal(t, "127", m.RawValue())
}

func TestTyping_InsertIntoFullValueDropsOverflow(t *testing.T) {
	m := newModel(WithDefaultValue("1234567890"))
	m = focusedAt(t, m, 0)

	m, cmd := typeKeys(m, "5")
	m = deliver(m, cmd)
	assert.Equal(t, "5123456789", m.RawValue())
	assert.Equal(t, 1, m.Caret())
}

func TestTyping_AtEndOfFullValueIgnored(t *testing.T) {
	rec := &recorder{}
	m := newModel(WithDefaultValue("1234567890"), WithOnChange(rec.onChange))
	m = deliver(m, m.Focus())

	m, cmd := typeKeys(m, "5")
	assert.Nil(t, cmd)
	assert.Equal(t, "1234567890", m.RawValue())
	assert.Empty(t, rec.changes)
}

func TestTyping_IgnoredWhenBlurred(t *testing.T) {
	m := newModel()
	m, cmd := typeKeys(m, "1")
	assert.Nil(t, cmd)
	assert.Empty(t, m.RawValue())
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name       string
		caret      int
		wantCaret  int
		wantRaw    string
		wantChange bool
	}{
		{"steps over dash", 4, 3, "1234567", false},
		{"deletes preceding digit", 3, 2, "124567", true},
		{"deletes within second group", 6, 5, "123467", true},
		{"at start does nothing", 0, 0, "1234567", false},
		{"over empty slot moves only", 10, 9, "1234567", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			m := newModel(WithDefaultValue("1234567"), WithOnChange(rec.onChange))
			m = focusedAt(t, m, tt.caret)

			m, cmd := press(m, tea.KeyBackspace)
			m = deliver(m, cmd)

			assert.Equal(t, tt.wantCaret, m.Caret())
			assert.Equal(t, tt.wantRaw, m.RawValue())
			assert.Equal(t, tt.wantChange, len(rec.changes) > 0)
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		caret      int
		wantCaret  int
		wantRaw    string
		wantChange bool
	}{
		{"steps over dash", 3, 4, "1234567", false},
		{"deletes digit under caret", 0, 0, "234567", true},
		{"deletes in second group", 4, 4, "123567", true},
		{"past last digit does nothing", 9, 9, "1234567", false},
		{"at end does nothing", 12, 12, "1234567", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			m := newModel(WithDefaultValue("1234567"), WithOnChange(rec.onChange))
			m = focusedAt(t, m, tt.caret)

			m, cmd := press(m, tea.KeyDelete)
			m = deliver(m, cmd)

			assert.Equal(t, tt.wantCaret, m.Caret())
			assert.Equal(t, tt.wantRaw, m.RawValue())
			assert.Equal(t, tt.wantChange, len(rec.changes) > 0)
		})
	}
}

func TestNavigation(t *testing.T) {
	m := newModel(WithDefaultValue("123"))
	m = focusedAt(t, m, 5)

	m, _ = press(m, tea.KeyLeft)
	assert.Equal(t, 4, m.Caret())
	m, _ = press(m, tea.KeyRight)
	m, _ = press(m, tea.KeyRight)
	assert.Equal(t, 6, m.Caret())
	m, _ = press(m, tea.KeyHome)
	assert.Equal(t, 0, m.Caret())
	m, _ = press(m, tea.KeyLeft)
	assert.Equal(t, 0, m.Caret())
	m, _ = press(m, tea.KeyEnd)
	assert.Equal(t, 12, m.Caret())
	m, _ = press(m, tea.KeyRight)
	assert.Equal(t, 12, m.Caret())
}

func TestPaste_Bracketed(t *testing.T) {
	rec := &recorder{}
	m := newModel(WithOnChange(rec.onChange))
	m = deliver(m, m.Focus())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("99999999999999"), Paste: true})
	m = deliver(m, cmd)

	assert.Equal(t, "9999999999", m.RawValue())
	assert.Len(t, m.RawValue(), 10)
	assert.Equal(t, 12, m.Caret())
	assert.Equal(t, change{"999-999-9999", "9999999999"}, rec.last())
}

func TestPaste_Formatted(t *testing.T) {
	m := newModel(WithDefaultValue("1"))
	m = deliver(m, m.Focus())

	m, cmd := m.Update(pasteMsg{id: m.ID(), text: "(555) 123-45"})
	m = deliver(m, cmd)

	assert.Equal(t, "55512345", m.RawValue())
	assert.Equal(t, "555-123-45**", m.MaskedValue())
	assert.Equal(t, 10, m.Caret())
}

func TestPaste_WithoutDigitsIgnored(t *testing.T) {
	m := newModel(WithDefaultValue("12"))
	m = deliver(m, m.Focus())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true})
	assert.Nil(t, cmd)
	assert.Equal(t, "12", m.RawValue())
}

func TestPaste_OtherInputIgnored(t *testing.T) {
	m := newModel()
	m = deliver(m, m.Focus())

	m, cmd := m.Update(pasteMsg{id: m.ID() + 1000, text: "123"})
	assert.Nil(t, cmd)
	assert.Empty(t, m.RawValue())
}

func TestPaste_ClipboardKeyReturnsCommand(t *testing.T) {
	m := newModel()
	m = deliver(m, m.Focus())

	_, cmd := press(m, tea.KeyCtrlV)
	assert.NotNil(t, cmd)
}

func TestPaste_ClipboardErrorLogged(t *testing.T) {
	buf := logger.NewBufferLogger()
	m := newModel(WithLogger(buf))

	m, cmd := m.Update(pasteErrMsg{id: m.ID(), err: assert.AnError})
	assert.Nil(t, cmd)
	assert.True(t, buf.HasLevel("warn"))
	assert.Empty(t, m.RawValue())
}

func TestClear(t *testing.T) {
	rec := &recorder{}
	cleared := 0
	m := newModel(
		WithDefaultValue("1234567"),
		WithAllowClear(),
		WithOnChange(rec.onChange),
		WithOnClear(func() { cleared++ }),
	)

	cmd := m.Clear()
	require.NotNil(t, cmd)
	assert.Empty(t, m.RawValue())
	assert.Equal(t, "***-***-****", m.MaskedValue())
	assert.Equal(t, change{"***-***-****", ""}, rec.last())
	assert.Equal(t, 1, cleared)
	assert.True(t, m.Focused(), "clear returns focus to the input")

	m = deliver(m, cmd)
	assert.Equal(t, 0, m.Caret())
}

func TestClear_Key(t *testing.T) {
	m := newModel(WithDefaultValue("12"), WithAllowClear())
	m = deliver(m, m.Focus())

	m, cmd := press(m, tea.KeyCtrlU)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.RawValue())
}

func TestClear_KeyWithoutAllowClear(t *testing.T) {
	m := newModel(WithDefaultValue("12"))
	m = deliver(m, m.Focus())

	m, cmd := press(m, tea.KeyCtrlU)
	assert.Nil(t, cmd)
	assert.Equal(t, "12", m.RawValue())
}

func TestBlur(t *testing.T) {
	rec := &recorder{}
	blurred := 0
	m := newModel(WithDefaultValue("123"), WithOnChange(rec.onChange), WithOnBlur(func() { blurred++ }))
	m = deliver(m, m.Focus())

	m.Blur()
	assert.False(t, m.Focused())
	assert.Equal(t, 1, blurred)
	assert.Equal(t, change{"123-***-****", "123"}, rec.last())

	m.Blur()
	assert.Equal(t, 1, blurred, "blurring twice fires once")
}

func TestControlled(t *testing.T) {
	rec := &recorder{}
	m := newModel(WithValue("123"), WithOnChange(rec.onChange))
	require.True(t, m.Controlled())
	m = deliver(m, m.Focus())

	m, cmd := typeKeys(m, "4")
	m = deliver(m, cmd)
	assert.Equal(t, change{"123-4**-****", "1234"}, rec.last())
	assert.Equal(t, "1234", m.RawValue(), "input echoes until the owner responds")

	require.NoError(t, m.SetValue("987-65"))
	assert.Equal(t, "98765", m.RawValue())
	assert.Equal(t, "987-65*-****", m.MaskedValue())
}

func TestControlled_OwnerRejectsInput(t *testing.T) {
	m := newModel(WithValue("123"))
	m = deliver(m, m.Focus())

	m, cmd := typeKeys(m, "4")
	m = deliver(m, cmd)
	require.NoError(t, m.SetValue("123"))
	assert.Equal(t, "123", m.RawValue())
}

func TestSetValue_Uncontrolled(t *testing.T) {
	m := newModel(WithDefaultValue("1"))
	err := m.SetValue("2")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
	assert.Equal(t, "1", m.RawValue())
	assert.False(t, m.Controlled())
}

func TestSetMask(t *testing.T) {
	m := newModel(WithDefaultValue("1234567890"))
	m = deliver(m, m.Focus())
	require.Equal(t, 12, m.Caret())

	m.SetMask("999-999")
	assert.Equal(t, "999-999", m.Mask())
	assert.Equal(t, "123456", m.RawValue())
	assert.Equal(t, "123-456", m.MaskedValue())
	assert.Equal(t, 7, m.Caret())
}

func TestNoDigitSlots(t *testing.T) {
	m := New("N/A", WithLogger(logger.Noop()))
	m = deliver(m, m.Focus())

	m, cmd := typeKeys(m, "42")
	m = deliver(m, cmd)
	assert.Equal(t, "N/A", m.MaskedValue())
	assert.Empty(t, m.RawValue())
}

func TestDisabled(t *testing.T) {
	m := newModel(WithDefaultValue("12"), WithDisabled(), WithAllowClear())
	assert.True(t, m.Disabled())

	m, cmd := typeKeys(m, "3")
	assert.Nil(t, cmd)
	assert.Nil(t, m.Clear())
	assert.Equal(t, "12", m.RawValue())
	assert.NotContains(t, m.View(), ui.SymbolClear)
}

func TestReadOnly(t *testing.T) {
	rec := &recorder{}
	m := newModel(WithDefaultValue("123"), WithReadOnly(), WithAllowClear(), WithOnChange(rec.onChange))
	m = deliver(m, m.Focus())

	m, cmd := typeKeys(m, "4")
	assert.Nil(t, cmd)
	m, cmd = press(m, tea.KeyBackspace)
	assert.Nil(t, cmd)
	m, cmd = press(m, tea.KeyCtrlU)
	assert.Nil(t, cmd)
	assert.Equal(t, "123", m.RawValue())
	assert.Empty(t, rec.changes)

	m, _ = press(m, tea.KeyLeft)
	assert.Equal(t, 2, m.Caret(), "read-only inputs still move the caret")
}

func TestCaret_StaleWriteIgnored(t *testing.T) {
	m := newModel(WithDefaultValue("123"))
	first := m.Focus()
	second := m.Click(6)

	m = deliver(m, first)
	assert.Equal(t, 3, m.Caret(), "superseded caret write does nothing")
	m = deliver(m, second)
	assert.Equal(t, 6, m.Caret())
}

func TestCaret_FlushedBeforeNextKey(t *testing.T) {
	m := newModel(WithDefaultValue("123"))
	_ = m.Click(0) // never delivered

	m, cmd := typeKeys(m, "5")
	m = deliver(m, cmd)
	assert.Equal(t, "5123", m.RawValue(), "digit lands at the clicked position")
}

func TestCaret_ResolvedAgainstCurrentValue(t *testing.T) {
	m := newModel(WithValue(""))
	cmd := m.Focus()
	require.NoError(t, m.SetValue("1234"))

	m = deliver(m, cmd)
	assert.Equal(t, 5, m.Caret(), "focus caret reflects the value at delivery time")
}

func TestCaret_DetachedWriteIgnored(t *testing.T) {
	buf := logger.NewBufferLogger()
	m := newModel(WithDefaultValue("123"), WithLogger(buf))
	cmd := m.Click(7)
	m.Detach()
	buf.Clear()

	m = deliver(m, cmd)
	assert.Equal(t, 3, m.Caret())
	assert.True(t, buf.HasLevel("debug"))
}

func TestCaret_OtherInputIgnored(t *testing.T) {
	a := newModel(WithDefaultValue("123"))
	b := newModel(WithDefaultValue("123"))
	cmd := a.Click(8)
	_ = b.Click(8)

	b = deliver(b, cmd)
	assert.Equal(t, 3, b.Caret())
}

func TestView(t *testing.T) {
	plainColors(t)

	m := newModel(
		WithDefaultValue("555"),
		WithLabel("Phone"),
		WithHelpText("US numbers only"),
		WithPrefix("+1"),
		WithSuffix("mobile"),
		WithSize(ui.SizeLarge),
		WithAllowClear(),
	)
	view := m.View()
	assert.Contains(t, view, "Phone")
	assert.Contains(t, view, "+1 555-***-**** mobile")
	assert.Contains(t, view, ui.SymbolClear)
	assert.Contains(t, view, "US numbers only")

	m = newModel(WithAllowClear())
	assert.NotContains(t, m.View(), ui.SymbolClear, "no clear glyph without a value")
}

func TestView_ShowsMaskedValueOnly(t *testing.T) {
	plainColors(t)

	m := newModel(WithDefaultValue("1234567890"))
	view := m.View()
	assert.Contains(t, view, "123-456-7890")
	assert.False(t, strings.Contains(view, "1234567890"))
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	assert.Len(t, k.ShortHelp(), 4)
	assert.Len(t, k.FullHelp(), 3)
}
