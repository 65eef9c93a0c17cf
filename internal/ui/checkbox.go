package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/uikit/internal/errors"
)

// checkState is the checkbox's source of truth. The variant is chosen at
// construction and never changes.
type checkState interface {
	checked() bool
	// toggled returns the state after the user flips the box.
	toggled(next bool) checkState
}

// ownedCheck is an uncontrolled checkbox: it stores its own state.
type ownedCheck struct{ on bool }

func (s ownedCheck) checked() bool                { return s.on }
func (s ownedCheck) toggled(next bool) checkState { return ownedCheck{on: next} }

// externalCheck is a controlled checkbox: only SetChecked changes it.
type externalCheck struct{ on bool }

func (s externalCheck) checked() bool           { return s.on }
func (s externalCheck) toggled(bool) checkState { return s }

// Checkbox is a labelled check box with optional tooltip.
type Checkbox struct {
	Label         string
	Value         string // Option value when used in a CheckboxGroup
	Tooltip       string
	Size          Size
	Status        Status
	Disabled      bool
	ReadOnly      bool
	Indeterminate bool
	HiddenLabel   bool
	OnChange      func(checked bool)

	state checkState
}

// NewCheckbox creates an uncontrolled checkbox.
func NewCheckbox(label string, defaultChecked bool) Checkbox {
	return Checkbox{Label: label, state: ownedCheck{on: defaultChecked}}
}

// NewControlledCheckbox creates a checkbox whose state is owned by the
// caller. Toggle only reports the request; SetChecked applies it.
func NewControlledCheckbox(label string, checked bool) Checkbox {
	return Checkbox{Label: label, state: externalCheck{on: checked}}
}

// Checked reports the effective checked state.
func (c Checkbox) Checked() bool {
	if c.state == nil {
		return false
	}
	return c.state.checked()
}

// Controlled reports whether the caller owns the checked state.
func (c Checkbox) Controlled() bool {
	_, ok := c.state.(externalCheck)
	return ok
}

// Toggle flips the box as if the user clicked it. Disabled and read-only
// boxes ignore it.
func (c *Checkbox) Toggle() {
	if c.Disabled || c.ReadOnly {
		return
	}
	if c.state == nil {
		c.state = ownedCheck{}
	}
	next := !c.state.checked()
	c.state = c.state.toggled(next)
	if c.OnChange != nil {
		c.OnChange(next)
	}
}

// SetChecked feeds a new value into a controlled checkbox.
func (c *Checkbox) SetChecked(checked bool) error {
	if !c.Controlled() {
		return errors.New(errors.ErrInput,
			"Cannot set the checked state of an uncontrolled checkbox",
			"Create it with NewControlledCheckbox to own its state")
	}
	c.state = externalCheck{on: checked}
	return nil
}

// Render draws the checkbox. focused shows the tooltip and a focus marker.
func (c Checkbox) Render(t Theme, focused bool) string {
	glyph := SymbolUnchecked
	switch {
	case c.Indeterminate:
		glyph = SymbolIndeterminate
	case c.Checked():
		glyph = SymbolChecked
	}

	pad := ""
	switch c.Size {
	case SizeMedium, "":
		pad = " "
	case SizeLarge:
		pad = "  "
	}

	indicator := t.checkboxIndicator(c.Status, c.Checked() || c.Indeterminate).
		Render(pad + glyph + pad)

	label := ""
	if c.Label != "" && !c.HiddenLabel {
		label = " " + c.Label
	}

	row := "[" + indicator + "]" + label
	style := lipgloss.NewStyle().Foreground(t.Foreground)
	switch {
	case c.Disabled:
		style = style.Foreground(t.Subtle).Faint(true)
	case c.ReadOnly:
		style = style.Foreground(t.Muted)
	}
	if focused {
		row = lipgloss.NewStyle().Foreground(t.Focus).Render("›") + " " + row
	} else {
		row = "  " + row
	}

	tip := Tooltip{Content: c.Tooltip}
	return tip.Wrap(t, style.Render(row), focused)
}

func (t Theme) checkboxIndicator(s Status, on bool) lipgloss.Style {
	color := t.Primary
	if s != StatusDefault && s != "" {
		color = t.StatusColor(s)
	}
	if on {
		return lipgloss.NewStyle().Background(color).Foreground(t.OnAccent)
	}
	return lipgloss.NewStyle().Foreground(color)
}

// groupValue is the group's source of truth for which options are checked.
type groupValue interface {
	values() []string
	changed(next []string) groupValue
}

type ownedValues struct{ v []string }

func (s ownedValues) values() []string                 { return s.v }
func (s ownedValues) changed(next []string) groupValue { return ownedValues{v: next} }

type externalValues struct{ v []string }

func (s externalValues) values() []string            { return s.v }
func (s externalValues) changed([]string) groupValue { return s }

// CheckboxGroup manages a set of checkbox options by value. Size, status,
// disabled and read-only set on the group apply to every option.
type CheckboxGroup struct {
	Label    string
	Options  []Checkbox
	Size     Size
	Status   Status
	Disabled bool
	ReadOnly bool
	OnChange func(values []string)

	value groupValue
}

// NewCheckboxGroup creates an uncontrolled group.
func NewCheckboxGroup(label string, options []Checkbox, defaultValue []string) CheckboxGroup {
	return CheckboxGroup{
		Label:   label,
		Options: options,
		value:   ownedValues{v: cloneStrings(defaultValue)},
	}
}

// NewControlledCheckboxGroup creates a group whose value is owned by the
// caller and updated through SetValue.
func NewControlledCheckboxGroup(label string, options []Checkbox, value []string) CheckboxGroup {
	return CheckboxGroup{
		Label:   label,
		Options: options,
		value:   externalValues{v: cloneStrings(value)},
	}
}

// Value returns a copy of the checked option values in check order.
func (g CheckboxGroup) Value() []string {
	if g.value == nil {
		return nil
	}
	return cloneStrings(g.value.values())
}

// IsChecked reports whether the option with the given value is checked.
func (g CheckboxGroup) IsChecked(optionValue string) bool {
	if g.value == nil {
		return false
	}
	for _, v := range g.value.values() {
		if v == optionValue {
			return true
		}
	}
	return false
}

// Toggle flips one option. Options that are disabled or read-only, on their
// own or through the group, ignore it.
func (g *CheckboxGroup) Toggle(optionValue string) {
	opt, ok := g.option(optionValue)
	if !ok {
		return
	}
	eff := g.Effective(opt)
	if eff.Disabled || eff.ReadOnly {
		return
	}
	if g.value == nil {
		g.value = ownedValues{}
	}

	current := g.value.values()
	var next []string
	if g.IsChecked(optionValue) {
		next = make([]string, 0, len(current))
		for _, v := range current {
			if v != optionValue {
				next = append(next, v)
			}
		}
	} else {
		next = append(cloneStrings(current), optionValue)
	}

	g.value = g.value.changed(next)
	if g.OnChange != nil {
		g.OnChange(cloneStrings(next))
	}
}

// SetValue feeds a new value into a controlled group.
func (g *CheckboxGroup) SetValue(values []string) error {
	if _, ok := g.value.(externalValues); !ok {
		return errors.New(errors.ErrInput,
			"Cannot set the value of an uncontrolled checkbox group",
			"Create it with NewControlledCheckboxGroup to own its value")
	}
	g.value = externalValues{v: cloneStrings(values)}
	return nil
}

// Effective returns the option as the group renders it: group settings
// applied and checked state taken from the group value.
func (g CheckboxGroup) Effective(opt Checkbox) Checkbox {
	if g.Size != "" {
		opt.Size = g.Size
	}
	if g.Status != "" {
		opt.Status = g.Status
	}
	opt.Disabled = opt.Disabled || g.Disabled
	opt.ReadOnly = opt.ReadOnly || g.ReadOnly
	opt.state = externalCheck{on: g.IsChecked(opt.Value)}
	return opt
}

// Render draws the legend and options. cursor is the focused option index;
// pass -1 when the group is not focused.
func (g CheckboxGroup) Render(t Theme, cursor int) string {
	lines := make([]string, 0, len(g.Options)+1)
	if g.Label != "" {
		lines = append(lines, t.LabelStyle().Render(g.Label))
	}
	for i, opt := range g.Options {
		lines = append(lines, g.Effective(opt).Render(t, i == cursor))
	}
	return strings.Join(lines, "\n")
}

func (g CheckboxGroup) option(value string) (Checkbox, bool) {
	for _, o := range g.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Checkbox{}, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
