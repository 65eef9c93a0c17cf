// Package ui provides the uikit terminal widgets and the styles they share.
//
// Every widget renders with an explicit Theme value. Nothing inspects the
// terminal to discover light or dark mode; callers pick a theme (usually from
// config or the --theme flag) and pass it down.
//
// # Components Overview
//
//	Button        - Eleven variants, three sizes, round and circle shapes
//	ButtonModel   - Bubble Tea wrapper with an animated loading spinner
//	Avatar        - Fallback text, initials or icon with a presence dot
//	AvatarGroup   - Row of avatars collapsing extras into "+N"
//	Checkbox      - Controlled or uncontrolled check box with tooltip
//	CheckboxGroup - Value-keyed set of checkboxes
//	Tooltip       - Single-line hint drawn above its child
//
// Text fields share FieldStyle, CaretStyle and friends from field.go; the
// masked input itself lives in the inputmask package.
//
// # CLI Output
//
// Report writes one status line per result, RenderSimpleTable prints
// non-interactive tables and RenderFill draws how much of a mask is filled:
//
//	ui.RenderFill(theme, 4, 10, 10) // [████░░░░░░] 4/10
//
// Use DisableColors() to switch to monochrome output (for --no-color).
package ui
