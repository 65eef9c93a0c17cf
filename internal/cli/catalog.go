package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/uikit/internal/catalog"
	"github.com/rileyhilliard/uikit/internal/errors"
	"golang.org/x/term"
)

// Catalog runs the component catalog full screen.
func Catalog(s *settings) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.NewNotTerminal("uikit catalog")
	}

	model := catalog.New(catalog.Options{
		Theme:       s.theme,
		Version:     formatVersion(version),
		Placeholder: s.cfg.PlaceholderRune(),
		AllowClear:  s.cfg.InputMask.AllowClear,
		PhoneMask:   presetPattern(s, "phone"),
		DateMask:    presetPattern(s, "date"),
		Logger:      s.log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Catalog failed",
			"Try a different terminal, or run with --no-color")
	}
	return nil
}

// presetPattern returns the named preset, or "" so the catalog uses its own
// default.
func presetPattern(s *settings, name string) string {
	if pattern, ok := s.cfg.ResolveMask(name); ok {
		return pattern
	}
	return ""
}
