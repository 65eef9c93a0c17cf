package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DividerWidth is the default width for divider lines.
const DividerWidth = 64

// Report writes one status line per item to an output writer. CLI commands
// use it for results that are not part of their machine-readable output.
type Report struct {
	w     io.Writer
	theme Theme
}

// NewReport creates a report writing to w.
func NewReport(w io.Writer, t Theme) *Report {
	return &Report{w: w, theme: t}
}

// Success renders a completed item.
// Shows: ✓ 555-123-4567
func (r *Report) Success(name, detail string) {
	fmt.Fprintln(r.w, FormatStatus(SymbolSuccess, r.theme.Success, name, detail, r.theme))
}

// Warn renders an item that needs attention.
// Shows: ⚠ 555-***-**** 3/10 digits
func (r *Report) Warn(name, detail string) {
	fmt.Fprintln(r.w, FormatStatus(SymbolWarning, r.theme.Warning, name, detail, r.theme))
}

// Fail renders a failed item.
func (r *Report) Fail(name, detail string) {
	fmt.Fprintln(r.w, FormatStatus(SymbolFail, r.theme.Danger, name, detail, r.theme))
}

// Divider renders a thin horizontal line.
func (r *Report) Divider() {
	style := lipgloss.NewStyle().Foreground(r.theme.Border)
	fmt.Fprintf(r.w, "%s\n", style.Render(strings.Repeat("─", DividerWidth)))
}

// FormatStatus returns a formatted status line. detail is rendered muted and
// omitted when empty.
func FormatStatus(symbol string, symbolColor lipgloss.Color, name, detail string, t Theme) string {
	symbolStyle := lipgloss.NewStyle().Foreground(symbolColor)
	detailStyle := lipgloss.NewStyle().Foreground(t.Muted)

	if detail == "" {
		return fmt.Sprintf("%s %s", symbolStyle.Render(symbol), name)
	}
	return fmt.Sprintf("%s %s %s", symbolStyle.Render(symbol), name, detailStyle.Render(detail))
}
