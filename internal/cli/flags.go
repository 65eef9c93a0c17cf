package cli

import (
	"unicode/utf8"

	"github.com/rileyhilliard/uikit/internal/config"
	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/spf13/cobra"
)

// FormatFlags holds the flags of `mask format`. Mask and Values come from
// positional arguments.
type FormatFlags struct {
	Mask        string
	Values      []string
	Raw         bool
	Placeholder string
	Check       bool
	JSON        bool
}

// InputFlags holds the flags of `mask input`.
type InputFlags struct {
	Mask        string
	Placeholder string
	Masked      bool
	Required    bool
	Label       string
}

// AddFormatFlags registers --raw, --placeholder, --check and --json.
func AddFormatFlags(cmd *cobra.Command, flags *FormatFlags) {
	cmd.Flags().BoolVar(&flags.Raw, "raw", false, "print the raw digits instead of the masked value")
	addPlaceholderFlag(cmd, &flags.Placeholder)
	cmd.Flags().BoolVar(&flags.Check, "check", false, "report which values fill every digit slot; fail if any do not")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "output results as JSON")
}

// AddInputFlags registers --placeholder, --masked, --required and --label.
func AddInputFlags(cmd *cobra.Command, flags *InputFlags) {
	addPlaceholderFlag(cmd, &flags.Placeholder)
	cmd.Flags().BoolVar(&flags.Masked, "masked", false, "print the masked value instead of the raw digits")
	cmd.Flags().BoolVar(&flags.Required, "required", false, "fail unless every digit slot is filled")
	cmd.Flags().StringVar(&flags.Label, "label", "", "label shown above the input (default: the mask)")
}

func addPlaceholderFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "placeholder", "", "character shown in empty digit slots (default from config, else *)")
}

// resolvePlaceholder returns the flag's placeholder when set, else the
// config's.
func resolvePlaceholder(flag string, cfg *config.Config) (rune, error) {
	if flag == "" {
		return cfg.PlaceholderRune(), nil
	}
	if err := config.ValidatePlaceholder(flag); err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			"Invalid --placeholder",
			"Use one visible character that is not a digit, like * or _")
	}
	r, _ := utf8.DecodeRuneInString(flag)
	return r, nil
}
