package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/uikit/internal/config"
	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/rileyhilliard/uikit/internal/inputmask"
	"github.com/rileyhilliard/uikit/internal/mask"
	"github.com/rileyhilliard/uikit/internal/ui"
	"github.com/rileyhilliard/uikit/internal/util"
	"golang.org/x/term"
)

// fillBarWidth is the bar width used by `mask format --check`.
const fillBarWidth = 10

// formatResult is one formatted value, as printed by --json.
type formatResult struct {
	Input    string `json:"input"`
	Masked   string `json:"masked"`
	Raw      string `json:"raw"`
	Complete bool   `json:"complete"`
}

// Format formats each value through the mask. Values come from opts.Values,
// or from the lines of in when there are none.
// With --json, errors that stop formatting are also written to out as an
// error envelope.
func Format(opts FormatFlags, s *settings, in io.Reader, out io.Writer) error {
	fail := func(err error) error {
		if opts.JSON {
			_ = WriteJSONFromError(out, err)
		}
		return err
	}

	pattern, _, err := resolveMask(opts.Mask, s)
	if err != nil {
		return fail(err)
	}
	placeholder, err := resolvePlaceholder(opts.Placeholder, s.cfg)
	if err != nil {
		return fail(err)
	}

	values := opts.Values
	if len(values) == 0 {
		values, err = readLines(in)
		if err != nil {
			return fail(err)
		}
	}

	p := mask.Parse(pattern)
	results := make([]formatResult, 0, len(values))
	incomplete := 0
	for _, v := range values {
		res := p.Apply(mask.Digits(v), placeholder)
		complete := res.Filled() == p.Capacity()
		if !complete {
			incomplete++
		}
		results = append(results, formatResult{
			Input:    v,
			Masked:   res.Masked,
			Raw:      res.Raw,
			Complete: complete,
		})
	}
	s.log.Debug("format: %d values through %q, %d incomplete", len(results), pattern, incomplete)

	switch {
	case opts.JSON:
		if err := WriteJSONSuccess(out, results); err != nil {
			return err
		}
	case opts.Check:
		report := ui.NewReport(out, s.theme)
		for _, r := range results {
			if r.Complete {
				report.Success(r.Masked, "")
				continue
			}
			report.Warn(r.Masked, ui.RenderFill(s.theme, len(r.Raw), p.Capacity(), fillBarWidth))
		}
	default:
		for _, r := range results {
			if opts.Raw {
				fmt.Fprintln(out, r.Raw)
			} else {
				fmt.Fprintln(out, r.Masked)
			}
		}
	}

	if opts.Check && incomplete > 0 {
		return errors.New(errors.ErrMask,
			fmt.Sprintf("%d of %d %s incomplete for %s", incomplete, len(results),
				util.Pluralize(len(results), "value", "values"), pattern),
			fmt.Sprintf("Each value needs %d %s", p.Capacity(), util.Pluralize(p.Capacity(), "digit", "digits")))
	}
	return nil
}

// resolveMask looks arg up as a preset and falls back to using it as a
// pattern. A bare word with no digit slots that is close to a preset name is
// reported as a misspelled preset.
func resolveMask(arg string, s *settings) (pattern string, preset bool, err error) {
	pattern, preset = s.cfg.ResolveMask(arg)
	if preset || mask.Parse(pattern).Capacity() > 0 || !isWord(arg) {
		return pattern, preset, nil
	}
	if similar := util.SuggestSimilar(arg, s.cfg.PresetNames(), 3); len(similar) > 0 {
		return "", false, errors.New(errors.ErrInput,
			fmt.Sprintf("Unknown preset '%s'", arg),
			"Did you mean: "+strings.Join(similar, ", ")+"?")
	}
	return pattern, false, nil
}

func isWord(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-' && r != '_'
	}) == -1
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput,
			"Failed to read values from stdin",
			"Pass values as arguments instead")
	}
	return lines, nil
}

// Input runs the interactive masked input and prints the result to out.
// The input itself draws on stderr so the value can be captured.
func Input(opts InputFlags, s *settings, out io.Writer) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.NewNotTerminal("uikit mask input")
	}

	pattern, preset, err := resolveMask(opts.Mask, s)
	if err != nil {
		return err
	}
	placeholder, err := resolvePlaceholder(opts.Placeholder, s.cfg)
	if err != nil {
		return err
	}

	title := opts.Label
	if title == "" {
		title = pattern
		if preset {
			title = fmt.Sprintf("%s  %s", strings.ToLower(opts.Mask), pattern)
		}
	}

	inputOpts := []inputmask.Option{
		inputmask.WithPlaceholder(placeholder),
		inputmask.WithTheme(s.theme),
		inputmask.WithLogger(s.log),
		inputmask.WithSize(ui.SizeLarge),
	}
	if s.cfg.InputMask.AllowClear {
		inputOpts = append(inputOpts, inputmask.WithAllowClear())
	}

	res, err := inputmask.PromptWithOutput(title, pattern, os.Stderr, os.Stdin, inputOpts...)
	if err != nil {
		return err
	}
	if opts.Required && !res.Complete {
		return errors.New(errors.ErrMask,
			fmt.Sprintf("%s is incomplete", res.Masked),
			"Fill every digit slot, or drop --required")
	}

	if opts.Masked {
		fmt.Fprintln(out, res.Masked)
	} else {
		fmt.Fprintln(out, res.Raw)
	}
	return nil
}

// Presets prints the configured presets as a table.
func Presets(s *settings, out io.Writer) error {
	names := s.cfg.PresetNames()
	if len(names) == 0 {
		fmt.Fprintln(out, "No presets configured.")
		return nil
	}

	placeholder := s.cfg.PlaceholderRune()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		pattern := s.cfg.Masks[name]
		p := mask.Parse(pattern)
		rows = append(rows, []string{name, pattern, strconv.Itoa(p.Capacity()), p.Empty(placeholder)})
	}

	titles := []string{"NAME", "MASK", "DIGITS", "EMPTY"}
	fmt.Fprintln(out, ui.RenderSimpleTable(s.theme, ui.ColumnWidths(titles, rows, 6), rows))

	source := "built-in defaults"
	if s.path != "" {
		source = s.path
	}
	fmt.Fprintln(out, lipgloss.NewStyle().Foreground(s.theme.Muted).Render("from "+source))
	return nil
}

// AddPreset saves a preset into the config file that was loaded.
func AddPreset(s *settings, name, pattern string, out io.Writer) error {
	if s.path == "" {
		return errors.New(errors.ErrConfig,
			"Config file not found",
			"Run 'uikit init' to create one, or pass --config")
	}
	if err := config.SetPreset(s.path, name, pattern); err != nil {
		return err
	}
	fmt.Fprintln(out, ui.FormatStatus(ui.SymbolSuccess, s.theme.Success,
		"Saved preset "+strings.ToLower(name), pattern, s.theme))
	return nil
}
