package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/uikit/internal/config"
	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/rileyhilliard/uikit/internal/logger"
	"github.com/rileyhilliard/uikit/internal/ui"
	"github.com/rileyhilliard/uikit/internal/util"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile   string
	noColor   bool
	themeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "uikit",
	Short: "Terminal widgets with a masked input engine",
	Long: `uikit formats digits through fixed masks like 999-999-9999 and ships
the terminal widgets built around them.

Examples:
  uikit mask format 999-999-9999 5551234567
  uikit mask input phone
  uikit catalog`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .uikit.yaml, searched upwards)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "theme override (light, dark or ansi)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if isUnknownCommandError(err) {
			name := extractUnknownCommand(err)
			if name != "" {
				err = unknownCommandError(name)
			}
		}
		fmt.Fprint(os.Stderr, err.Error())
		if !strings.HasSuffix(err.Error(), "\n") {
			fmt.Fprintln(os.Stderr)
		}
		os.Exit(1)
	}
}

// settings is the resolved config plus everything the global flags override.
type settings struct {
	cfg   *config.Config
	path  string // Empty when no config file was found
	theme ui.Theme
	log   logger.Logger
}

// loadSettings loads config and applies the global flags on top of it.
func loadSettings() (*settings, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	name := cfg.Theme
	if themeFlag != "" {
		name = themeFlag
	}
	theme, ok := ui.ThemeByName(name)
	if !ok {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown theme %q", name),
			"Use --theme light, dark or ansi")
	}

	applyColorMode(cfg.Color, noColor)

	return &settings{
		cfg:   cfg,
		path:  path,
		theme: theme,
		log:   logger.NewEnvLogger("uikit"),
	}, nil
}

// applyColorMode sets the Lip Gloss color profile. --no-color wins over the
// config file; "auto" keeps terminal detection.
func applyColorMode(mode string, disabled bool) {
	switch {
	case disabled || mode == "never":
		ui.DisableColors()
	case mode == "always":
		ui.EnableColors()
	}
}

// unknownCommandError suggests the closest command names when there are any.
func unknownCommandError(name string) error {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	suggestion := "Run 'uikit --help' to see the available commands"
	if similar := util.SuggestSimilar(name, names, 3); len(similar) > 0 {
		suggestion = "Did you mean: " + strings.Join(similar, ", ") + "?"
	}
	return errors.New(errors.ErrInput, fmt.Sprintf("Unknown command %q", name), suggestion)
}

// isUnknownCommandError checks if the error is cobra's unknown command or
// unknown flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "uikit"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
