package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the theme family. Widgets pick their style tables by mode.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeANSI  Mode = "ansi"
)

// AllModes lists the supported theme modes in display order.
var AllModes = []Mode{ModeLight, ModeDark, ModeANSI}

// Theme is the palette every widget renders with. It is passed explicitly
// to each component; nothing reads terminal state to discover it.
type Theme struct {
	Mode Mode

	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color // Disabled text and borders
	Surface    lipgloss.Color // Filled widget background
	Border     lipgloss.Color
	Focus      lipgloss.Color

	Primary  lipgloss.Color
	OnAccent lipgloss.Color // Text on top of Primary/Danger fills
	Gradient [3]lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color

	TooltipBackground lipgloss.Color
	TooltipForeground lipgloss.Color
}

// LightTheme returns the default palette.
func LightTheme() Theme {
	return Theme{
		Mode:              ModeLight,
		Foreground:        "#111827",
		Muted:             "#6B7280",
		Subtle:            "#D1D5DB",
		Surface:           "#E5E7EB",
		Border:            "#D1D5DB",
		Focus:             "#3B82F6",
		Primary:           "#2563EB",
		OnAccent:          "#FFFFFF",
		Gradient:          [3]lipgloss.Color{"#3B82F6", "#8B5CF6", "#EC4899"},
		Success:           "#22C55E",
		Warning:           "#F59E0B",
		Danger:            "#EF4444",
		TooltipBackground: "#1F2937",
		TooltipForeground: "#FFFFFF",
	}
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Mode:              ModeDark,
		Foreground:        "#F9FAFB",
		Muted:             "#9CA3AF",
		Subtle:            "#4B5563",
		Surface:           "#374151",
		Border:            "#4B5563",
		Focus:             "#60A5FA",
		Primary:           "#3B82F6",
		OnAccent:          "#FFFFFF",
		Gradient:          [3]lipgloss.Color{"#60A5FA", "#A78BFA", "#F472B6"},
		Success:           "#4ADE80",
		Warning:           "#FBBF24",
		Danger:            "#F87171",
		TooltipBackground: "#F3F4F6",
		TooltipForeground: "#111827",
	}
}

// ANSITheme uses only the 16 base terminal colors, so it follows whatever
// palette the terminal is configured with.
func ANSITheme() Theme {
	return Theme{
		Mode:              ModeANSI,
		Foreground:        ColorPrimary,
		Muted:             ColorMuted,
		Subtle:            ColorMuted,
		Surface:           "0",
		Border:            ColorMuted,
		Focus:             ColorInfo,
		Primary:           ColorSecondary,
		OnAccent:          "15",
		Gradient:          [3]lipgloss.Color{ColorSecondary, "5", ColorInfo},
		Success:           ColorSuccess,
		Warning:           ColorWarning,
		Danger:            ColorError,
		TooltipBackground: ColorPrimary,
		TooltipForeground: "0",
	}
}

// ThemeByName resolves a mode name ("light", "dark", "ansi", case-insensitive).
// Unknown names return the light theme and false.
func ThemeByName(name string) (Theme, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case ModeLight:
		return LightTheme(), true
	case ModeDark:
		return DarkTheme(), true
	case ModeANSI:
		return ANSITheme(), true
	default:
		return LightTheme(), false
	}
}

// Toggle returns the other theme of the light/dark pair. The ANSI theme
// toggles to light.
func (t Theme) Toggle() Theme {
	if t.Mode == ModeDark || t.Mode == ModeANSI {
		return LightTheme()
	}
	return DarkTheme()
}

// StatusColor maps a validation status to its border/accent color.
func (t Theme) StatusColor(s Status) lipgloss.Color {
	switch s {
	case StatusSuccess:
		return t.Success
	case StatusWarning:
		return t.Warning
	case StatusError:
		return t.Danger
	default:
		return t.Border
	}
}

// Size is the shared small/medium/large scale used by inputs and checkboxes.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Status is the validation state shown by inputs and checkboxes.
type Status string

const (
	StatusDefault Status = "default"
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)
