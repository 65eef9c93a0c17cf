package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the button's visual treatment.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonDanger    ButtonVariant = "danger"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonLink      ButtonVariant = "link"
	ButtonText      ButtonVariant = "text"
	ButtonSolid     ButtonVariant = "solid"
	ButtonOutlined  ButtonVariant = "outlined"
	ButtonDashed    ButtonVariant = "dashed"
	ButtonFilled    ButtonVariant = "filled"
	ButtonGradient  ButtonVariant = "gradient"
)

// AllButtonVariants lists every variant in catalog order.
var AllButtonVariants = []ButtonVariant{
	ButtonPrimary, ButtonSecondary, ButtonDanger, ButtonGhost, ButtonLink, ButtonText,
	ButtonSolid, ButtonOutlined, ButtonDashed, ButtonFilled, ButtonGradient,
}

// ButtonSize controls horizontal padding.
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

// ButtonShape controls the outline. Circle buttons show only their icon.
type ButtonShape string

const (
	ShapeDefault ButtonShape = "default"
	ShapeRound   ButtonShape = "round"
	ShapeCircle  ButtonShape = "circle"
)

// dashedBorder approximates a CSS dashed outline.
var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// Button is a stateless button description. Zero values pick the primary
// variant, medium size and default shape.
type Button struct {
	Label      string
	Variant    ButtonVariant
	Size       ButtonSize
	Shape      ButtonShape
	PrefixIcon string
	SuffixIcon string
	Loading    bool
	Disabled   bool
	FullWidth  bool
	Width      int // Used when FullWidth is set

	// LoadingFrame replaces the prefix icon while loading. ButtonModel keeps
	// it animated; a static render falls back to SymbolProgress.
	LoadingFrame string
}

// Interactive reports whether the button accepts presses.
func (b Button) Interactive() bool {
	return !b.Disabled && !b.Loading
}

// Render draws the button with the given theme.
func (b Button) Render(t Theme) string {
	variant := b.Variant
	if variant == "" {
		variant = ButtonPrimary
	}

	content := b.content()
	style := t.ButtonStyle(variant).Padding(0, buttonPadding(b.Size, b.Shape))

	switch b.Shape {
	case ShapeRound, ShapeCircle:
		style = style.Border(lipgloss.RoundedBorder())
		switch variant {
		case ButtonOutlined, ButtonDashed, ButtonGhost:
		default:
			style = style.BorderForeground(t.Border)
		}
	}

	if b.FullWidth && b.Width > 0 {
		style = style.Width(b.Width).Align(lipgloss.Center)
	}

	if !b.Interactive() {
		style = style.
			Foreground(t.Subtle).
			UnsetBackground().
			Faint(true)
		return style.Render(content)
	}

	if variant == ButtonGradient {
		return style.UnsetBackground().Render(gradientText(content, t))
	}
	return style.Render(content)
}

// content assembles icon and label. The loading frame takes the prefix
// slot; a circle shows the icon alone.
func (b Button) content() string {
	prefix := b.PrefixIcon
	if b.Loading {
		prefix = b.LoadingFrame
		if prefix == "" {
			prefix = SymbolProgress
		}
	}

	if b.Shape == ShapeCircle {
		if prefix != "" {
			return prefix
		}
		if b.SuffixIcon != "" {
			return b.SuffixIcon
		}
		if r := []rune(b.Label); len(r) > 0 {
			return string(r[0])
		}
		return " "
	}

	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	if b.Label != "" {
		parts = append(parts, b.Label)
	}
	if b.SuffixIcon != "" && !b.Loading {
		parts = append(parts, b.SuffixIcon)
	}
	return strings.Join(parts, " ")
}

func buttonPadding(s ButtonSize, shape ButtonShape) int {
	if shape == ShapeCircle {
		return 0
	}
	pad := 2
	switch s {
	case ButtonSmall:
		pad = 1
	case ButtonLarge:
		pad = 3
	}
	if shape == ShapeRound {
		pad++
	}
	return pad
}

// ButtonStyle is the variant style table.
func (t Theme) ButtonStyle(v ButtonVariant) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch v {
	case ButtonPrimary:
		return base.Background(t.Primary).Foreground(t.OnAccent).Bold(true)
	case ButtonSecondary, ButtonFilled:
		return base.Background(t.Surface).Foreground(t.Foreground)
	case ButtonDanger:
		return base.Background(t.Danger).Foreground(t.OnAccent).Bold(true)
	case ButtonGhost:
		return base.Foreground(t.Primary).Border(lipgloss.NormalBorder()).BorderForeground(t.Primary)
	case ButtonLink:
		return base.Foreground(t.Primary).Underline(true)
	case ButtonText:
		return base.Foreground(t.Foreground)
	case ButtonSolid:
		return base.Foreground(t.Foreground).Reverse(true)
	case ButtonOutlined:
		return base.Foreground(t.Foreground).Border(lipgloss.NormalBorder()).BorderForeground(t.Border)
	case ButtonDashed:
		return base.Foreground(t.Foreground).Border(dashedBorder).BorderForeground(t.Border)
	case ButtonGradient:
		return base.Foreground(t.OnAccent).Bold(true)
	default:
		return base.Foreground(t.Foreground)
	}
}

// gradientText paints the label in three background bands.
func gradientText(s string, t Theme) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	var b strings.Builder
	band := (len(runes) + 2) / 3
	for i, r := range runes {
		idx := i / band
		if idx > 2 {
			idx = 2
		}
		b.WriteString(lipgloss.NewStyle().
			Background(t.Gradient[idx]).
			Foreground(t.OnAccent).
			Bold(true).
			Render(string(r)))
	}
	return b.String()
}
