package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// tooltipMaxWidth is the default maximum width of the tooltip box in visible
// characters, including 1 character of padding on each side.
const tooltipMaxWidth = 40

// Tooltip is a single-line hint drawn above the element it describes.
type Tooltip struct {
	Content  string
	MaxWidth int
}

// Render draws the tooltip box. Content wider than the box is truncated
// with an ellipsis.
func (tt Tooltip) Render(t Theme) string {
	maxWidth := tt.MaxWidth
	if maxWidth <= 0 {
		maxWidth = tooltipMaxWidth
	}
	if maxWidth < 4 {
		maxWidth = 4
	}
	inner := maxWidth - 2

	text := tt.Content
	if ansi.StringWidth(text) > inner {
		text = ansi.Truncate(text, inner, "…")
	}

	return lipgloss.NewStyle().
		Background(t.TooltipBackground).
		Foreground(t.TooltipForeground).
		Padding(0, 1).
		Render(text)
}

// Wrap places the tooltip above child, centered, when visible is true.
// An empty tooltip or a hidden one returns child unchanged.
func (tt Tooltip) Wrap(t Theme, child string, visible bool) string {
	if !visible || tt.Content == "" {
		return child
	}
	return lipgloss.JoinVertical(lipgloss.Center, tt.Render(t), child)
}
