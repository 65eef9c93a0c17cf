package config

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .uikit.yaml configuration file.
type Config struct {
	Version   int               `yaml:"version" mapstructure:"version"`
	Theme     string            `yaml:"theme" mapstructure:"theme"`
	Color     string            `yaml:"color" mapstructure:"color"`
	InputMask InputMaskConfig   `yaml:"input_mask" mapstructure:"input_mask"`
	Masks     map[string]string `yaml:"masks" mapstructure:"masks"`
}

// InputMaskConfig holds defaults for masked inputs created by the CLI.
type InputMaskConfig struct {
	// Placeholder is the single character shown in empty digit slots.
	Placeholder string `yaml:"placeholder" mapstructure:"placeholder"`

	// AllowClear shows the clear glyph and enables ctrl+u.
	AllowClear bool `yaml:"allow_clear" mapstructure:"allow_clear"`
}

// DefaultPresets are the masks available without any config file.
func DefaultPresets() map[string]string {
	return map[string]string{
		"phone":    "999-999-9999",
		"us-phone": "(999) 999-9999",
		"zip":      "99999",
		"date":     "99/99/9999",
		"time":     "99:99",
		"ssn":      "999-99-9999",
		"card":     "9999 9999 9999 9999",
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Theme:   "light",
		Color:   "auto",
		InputMask: InputMaskConfig{
			Placeholder: "*",
			AllowClear:  false,
		},
		Masks: DefaultPresets(),
	}
}

// PlaceholderRune returns the configured placeholder, or '*' when unset.
func (c *Config) PlaceholderRune() rune {
	r, size := utf8.DecodeRuneInString(c.InputMask.Placeholder)
	if size == 0 || r == utf8.RuneError {
		return '*'
	}
	return r
}

// ResolveMask returns the pattern for a preset name, or arg itself when no
// preset matches. Preset names are case-insensitive.
func (c *Config) ResolveMask(arg string) (pattern string, preset bool) {
	if p, ok := c.Masks[strings.ToLower(arg)]; ok {
		return p, true
	}
	return arg, false
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Masks))
	for name := range c.Masks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
