package inputmask

import (
	"github.com/rileyhilliard/uikit/internal/logger"
	"github.com/rileyhilliard/uikit/internal/ui"
)

// Option configures a Model in New.
type Option func(*Model)

// WithDefaultValue makes the input uncontrolled, starting from raw. Formatted
// text such as "123-456-7890" is accepted and reduced to digits.
func WithDefaultValue(raw string) Option {
	return func(m *Model) { m.src = ownedSource{value: raw} }
}

// WithValue makes the input controlled by its owner, who must feed accepted
// changes back through SetValue. WithValue and WithDefaultValue are
// exclusive; the last one given wins.
func WithValue(raw string) Option {
	return func(m *Model) { m.src = externalSource{value: raw} }
}

// WithPlaceholder sets the rune shown in empty digit slots.
func WithPlaceholder(r rune) Option {
	return func(m *Model) { m.placeholder = r }
}

// WithAllowClear shows a clear glyph while the input has a value and enables
// the clear key binding.
func WithAllowClear() Option {
	return func(m *Model) { m.allowClear = true }
}

// WithDisabled makes the input ignore all interaction.
func WithDisabled() Option {
	return func(m *Model) { m.disabled = true }
}

// WithReadOnly allows focus and caret movement but no edits.
func WithReadOnly() Option {
	return func(m *Model) { m.readOnly = true }
}

// WithLabel renders a label above the field.
func WithLabel(label string) Option {
	return func(m *Model) { m.label = label }
}

// WithHelpText renders help text below the field.
func WithHelpText(text string) Option {
	return func(m *Model) { m.helpText = text }
}

// WithPrefix renders an adornment before the value.
func WithPrefix(prefix string) Option {
	return func(m *Model) { m.prefix = prefix }
}

// WithSuffix renders an adornment after the value.
func WithSuffix(suffix string) Option {
	return func(m *Model) { m.suffix = suffix }
}

// WithSize sets the field width class.
func WithSize(s ui.Size) Option {
	return func(m *Model) { m.size = s }
}

// WithStatus sets the validation status shown by the border.
func WithStatus(s ui.Status) Option {
	return func(m *Model) { m.status = s }
}

// WithTheme sets the palette used by View.
func WithTheme(t ui.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithOnChange registers the change callback. It receives the masked and raw
// values after every accepted mutation.
func WithOnChange(fn func(masked, raw string)) Option {
	return func(m *Model) { m.onChange = fn }
}

// WithOnClear registers a callback fired by Clear.
func WithOnClear(fn func()) Option {
	return func(m *Model) { m.onClear = fn }
}

// WithOnFocus registers a callback fired when the input gains focus.
func WithOnFocus(fn func()) Option {
	return func(m *Model) { m.onFocus = fn }
}

// WithOnBlur registers a callback fired when the input loses focus.
func WithOnBlur(fn func()) Option {
	return func(m *Model) { m.onBlur = fn }
}

// WithLogger sets the logger for caret and mode diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(m *Model) { m.log = l }
}
