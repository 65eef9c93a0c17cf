package cli

import (
	"os"

	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	formatFlags     FormatFlags
	inputFlags      InputFlags
	initForce       bool
	initNonInteract bool
	initTheme       string
	initPlaceholder string
	initAllowClear  bool
)

// maskCmd groups the mask subcommands
var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Format and enter values through digit masks",
	Long: `Work with digit masks. In a mask, 9 is a digit slot and every other
character is a literal that is always shown.

A mask argument can also name a preset from .uikit.yaml (phone, zip, date, ...).`,
}

// maskFormatCmd applies a mask without a terminal
var maskFormatCmd = &cobra.Command{
	Use:   "format <mask|preset> [value...]",
	Short: "Format values through a mask",
	Long: `Format each value through the mask and print one result per line.
Non-digits in a value are ignored and digits past the mask's capacity are
dropped. Without values, lines are read from stdin.

Examples:
  uikit mask format 999-999-9999 5551234567
  uikit mask format phone --raw "(555) 123-4567"
  cat numbers.txt | uikit mask format zip --check`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		opts := formatFlags
		opts.Mask = args[0]
		opts.Values = args[1:]
		return Format(opts, s, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// maskInputCmd runs the interactive masked input
var maskInputCmd = &cobra.Command{
	Use:   "input <mask|preset>",
	Short: "Enter a value through an interactive masked input",
	Long: `Open a masked input in the terminal and print the raw digits on enter.
Press esc to cancel.

Examples:
  uikit mask input phone
  uikit mask input "(999) 999-9999" --masked`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		opts := inputFlags
		opts.Mask = args[0]
		return Input(opts, s, cmd.OutOrStdout())
	},
}

// maskPresetsCmd lists the configured presets
var maskPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List mask presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return Presets(s, cmd.OutOrStdout())
	},
}

// maskAddCmd saves a preset to the config file
var maskAddCmd = &cobra.Command{
	Use:   "add <name> <mask>",
	Short: "Save a mask preset to .uikit.yaml",
	Long: `Add or replace a named mask preset in the config file. Comments and
formatting in the file are kept.

Examples:
  uikit mask add ext "x9999"
  uikit mask add intl "+9 999 999 9999"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return AddPreset(s, args[0], args[1], cmd.OutOrStdout())
	},
}

// catalogCmd starts the interactive component catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse every widget in an interactive catalog",
	Long: `Open the component catalog: masked inputs, buttons, avatars,
checkboxes and tooltips, with a light/dark toggle (ctrl+t).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return Catalog(s)
	},
}

// initCmd creates a new .uikit.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .uikit.yaml configuration",
	Long: `Create a .uikit.yaml file in the current directory. Asks for the
theme, placeholder and clear button unless --non-interactive is set.

Examples:
  uikit init
  uikit init --force
  uikit init --non-interactive --theme dark --placeholder _`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteract,
			Theme:          initTheme,
			Placeholder:    initPlaceholder,
			AllowClear:     initAllowClear,
		}, cmd.OutOrStdout())
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for uikit.

Examples:
  # Bash
  uikit completion bash > /etc/bash_completion.d/uikit

  # Zsh
  uikit completion zsh > "${fpath[1]}/_uikit"

  # Fish
  uikit completion fish > ~/.config/fish/completions/uikit.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	AddFormatFlags(maskFormatCmd, &formatFlags)
	AddInputFlags(maskInputCmd, &inputFlags)

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteract, "non-interactive", false, "skip prompts, use flags and defaults")
	initCmd.Flags().StringVar(&initTheme, "theme", "", "theme to save (light, dark or ansi)")
	initCmd.Flags().StringVar(&initPlaceholder, "placeholder", "", "placeholder shown in empty digit slots")
	initCmd.Flags().BoolVar(&initAllowClear, "allow-clear", false, "show a clear button on inputs")

	maskCmd.AddCommand(maskFormatCmd)
	maskCmd.AddCommand(maskInputCmd)
	maskCmd.AddCommand(maskPresetsCmd)
	maskCmd.AddCommand(maskAddCmd)

	// Register all commands
	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
