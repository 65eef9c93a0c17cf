package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fill bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// BuildBarString builds the raw bar string (without styling) from filled/empty counts.
// If brackets is true, wraps in [ ].
func BuildBarString(filledCount, emptyCount int, brackets bool) string {
	var sb strings.Builder
	capacity := filledCount + emptyCount
	if brackets {
		capacity += 2
	}
	sb.Grow(capacity)

	if brackets {
		sb.WriteRune('[')
	}
	for i := 0; i < filledCount; i++ {
		sb.WriteRune(BarFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(BarEmpty)
	}
	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// FillCounts returns how many of width cells a filled/total ratio covers.
// A zero total counts as complete.
func FillCounts(filled, total, width int) (on, off int) {
	if width <= 0 {
		return 0, 0
	}
	if total <= 0 {
		return width, 0
	}
	if filled < 0 {
		filled = 0
	}
	if filled > total {
		filled = total
	}
	on = filled * width / total
	return on, width - on
}

// RenderFill draws how many digit slots of a mask are filled, for example
// "[████░░░░░░] 4/10". Complete values render in the success color.
func RenderFill(t Theme, filled, total, width int) string {
	on, off := FillCounts(filled, total, width)
	if on+off == 0 {
		return ""
	}

	color := t.Primary
	if filled >= total {
		color = t.Success
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(BuildBarString(on, off, true))
	count := lipgloss.NewStyle().Foreground(t.Muted).Render(fmt.Sprintf("%d/%d", filled, total))
	return bar + " " + count
}
