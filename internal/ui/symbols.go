package ui

// Unicode symbols for status indicators and widget chrome.
const (
	SymbolSuccess  = "✓" // Operation completed successfully
	SymbolFail     = "✗" // Operation failed
	SymbolPending  = "○" // Not yet started
	SymbolProgress = "◐" // In progress
	SymbolComplete = "●" // Done (alternative to success)
	SymbolWarning  = "⚠" // Needs attention
)

// Widget glyphs.
const (
	SymbolClear         = "✕" // Clear button on inputs
	SymbolChecked       = "✔" // Checked checkbox
	SymbolIndeterminate = "━" // Indeterminate checkbox
	SymbolUnchecked     = " " // Empty checkbox
	SymbolUser          = "☺" // Avatar without image, initials or fallback
	SymbolStatusDot     = "●" // Avatar presence indicator
)
