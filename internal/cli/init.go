package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/uikit/internal/config"
	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/rileyhilliard/uikit/internal/ui"
	"github.com/rileyhilliard/uikit/internal/util"
	"golang.org/x/term"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use flags and defaults
	Theme          string // Pre-selected theme
	Placeholder    string // Pre-selected placeholder
	AllowClear     bool
}

// Init creates a new .uikit.yaml configuration file in the current directory.
func Init(opts InitOptions, out io.Writer) error {
	configPath := filepath.Join(".", config.ConfigFileName)
	interactive := !opts.NonInteractive && term.IsTerminal(int(os.Stdin.Fd()))

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if !interactive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	if opts.Placeholder != "" {
		cfg.InputMask.Placeholder = opts.Placeholder
	}
	cfg.InputMask.AllowClear = opts.AllowClear

	if interactive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Theme").
					Options(themeOptions()...).
					Value(&cfg.Theme),
				huh.NewInput().
					Title("Placeholder").
					Description("Shown in digit slots that have no digit yet").
					Placeholder("*").
					Value(&cfg.InputMask.Placeholder).
					Validate(config.ValidatePlaceholder),
				huh.NewConfirm().
					Title("Show a clear button on masked inputs?").
					Value(&cfg.InputMask.AllowClear),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	theme, _ := ui.ThemeByName(cfg.Theme)
	fmt.Fprintln(out, ui.FormatStatus(ui.SymbolSuccess, theme.Success,
		"Created "+config.ConfigFileName, fmt.Sprintf("%d mask %s", len(cfg.Masks), util.Pluralize(len(cfg.Masks), "preset", "presets")), theme))
	return nil
}

func themeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(ui.AllModes))
	for _, mode := range ui.AllModes {
		opts = append(opts, huh.NewOption(string(mode), string(mode)))
	}
	return opts
}
