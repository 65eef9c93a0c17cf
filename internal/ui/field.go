package ui

import "github.com/charmbracelet/lipgloss"

// FieldWidth returns the minimum inner width, in cells, of a text field.
func FieldWidth(s Size) int {
	switch s {
	case SizeSmall:
		return 16
	case SizeLarge:
		return 36
	default:
		return 24
	}
}

// FieldStyle returns the frame style for a text field. Focus brightens the
// border; a non-default status keeps its color while focused.
func (t Theme) FieldStyle(s Size, status Status, focused, disabled bool) lipgloss.Style {
	border := t.StatusColor(status)
	if focused && status == StatusDefault {
		border = t.Focus
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(t.Foreground).
		Padding(0, 1).
		Width(FieldWidth(s))

	if disabled {
		style = style.
			BorderForeground(t.Subtle).
			Foreground(t.Muted)
	}
	return style
}

// CaretStyle highlights the cell under the caret.
func (t Theme) CaretStyle() lipgloss.Style {
	return lipgloss.NewStyle().Reverse(true)
}

// LabelStyle renders field and group labels.
func (t Theme) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Foreground).Bold(true)
}

// HelpStyle renders help text below a field.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// AffixStyle renders prefix and suffix adornments.
func (t Theme) AffixStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// ClearStyle renders the clear button glyph.
func (t Theme) ClearStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}
