package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // Version string (e.g., "v0.1.0")
	Tagline string // Optional tagline (e.g., "Component catalog")
	Detail  string // Optional muted line, such as the active theme
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the uikit title block.
func RenderHeader(t Theme, info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(t.Focus)
	taglineStyle := lipgloss.NewStyle().Foreground(t.Foreground)
	detailStyle := lipgloss.NewStyle().Foreground(t.Muted)
	dividerStyle := lipgloss.NewStyle().Foreground(t.Border)

	var output strings.Builder

	output.WriteString(titleStyle.Render("uikit"))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	if info.Detail != "" {
		output.WriteString(detailStyle.Render(info.Detail))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}
