// Package cli implements the uikit command-line interface.
//
// Each Cobra command loads settings (config file plus global flag overrides)
// and delegates to a plain function that takes explicit I/O, so the work is
// testable without a terminal.
//
// # Command Structure
//
//	uikit mask format <mask> [value...]  - Format values, or stdin lines
//	uikit mask input <mask>              - Interactive masked input
//	uikit mask presets                   - List named masks
//	uikit mask add <name> <mask>         - Save a named mask
//	uikit catalog                        - Interactive widget catalog
//	uikit init                           - Create .uikit.yaml
//	uikit version | completion
//
// A mask argument is looked up as a preset name first and used as a literal
// pattern otherwise.
//
// # Flag Handling
//
// Global flags (--config, --no-color, --theme) are defined on the root
// command. --no-color and the config's color mode pick the Lip Gloss color
// profile before anything renders.
package cli
