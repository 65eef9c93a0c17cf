package config

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/rileyhilliard/uikit/internal/mask"
)

// ValidThemes are the accepted values of the theme key.
var ValidThemes = []string{"light", "dark", "ansi"}

// ValidColorModes are the accepted values of the color key.
var ValidColorModes = []string{"auto", "always", "never"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but uikit only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade uikit or lower the version in .uikit.yaml.")
	}

	if !contains(ValidThemes, cfg.Theme) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown theme '%s'", cfg.Theme),
			fmt.Sprintf("Use one of: %s.", strings.Join(ValidThemes, ", ")))
	}

	if !contains(ValidColorModes, cfg.Color) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Color),
			fmt.Sprintf("Use one of: %s.", strings.Join(ValidColorModes, ", ")))
	}

	if err := ValidatePlaceholder(cfg.InputMask.Placeholder); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'input_mask' section in your .uikit.yaml.")
	}

	names := make([]string, 0, len(cfg.Masks))
	for name := range cfg.Masks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := ValidatePreset(name, cfg.Masks[name]); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
				"Check the 'masks' section in your .uikit.yaml.")
		}
	}

	return nil
}

// ValidatePlaceholder checks that s is a single character that cannot be
// mistaken for entered data.
func ValidatePlaceholder(s string) error {
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("placeholder must be exactly one character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if unicode.IsDigit(r) {
		return fmt.Errorf("placeholder %q is a digit and would look like entered data", s)
	}
	if unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return fmt.Errorf("placeholder %q is not a visible character", s)
	}
	return nil
}

// ValidatePreset checks a named mask. A pattern without digit slots is legal
// for the engine but can never hold a value, so presets must have one.
func ValidatePreset(name, pattern string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("preset name %q must be a single word", name)
	}
	if mask.Parse(pattern).Capacity() == 0 {
		return fmt.Errorf("preset '%s' has no digit slots - use 9 for each digit, e.g. 999-9999", name)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
