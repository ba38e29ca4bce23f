package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spiffcs/timewarp/internal/constants"
	"golang.org/x/term"
)

// colorFlag implements pflag.Value for the tri-state --color flag.
type colorFlag struct {
	opts *Options
}

// newColorFlag creates a new colorFlag with the given options.
func newColorFlag(opts *Options) *colorFlag {
	if opts.Color == "" {
		opts.Color = constants.ColorAuto
	}
	return &colorFlag{opts: opts}
}

func (f *colorFlag) String() string {
	return f.opts.Color
}

func (f *colorFlag) Set(s string) error {
	switch s {
	case "true", "1", "yes", constants.ColorAlways:
		f.opts.Color = constants.ColorAlways
	case "false", "0", "no", constants.ColorNever:
		f.opts.Color = constants.ColorNever
	case constants.ColorAuto:
		f.opts.Color = constants.ColorAuto
	default:
		return fmt.Errorf("invalid value %q: use auto, always, or never", s)
	}
	return nil
}

func (f *colorFlag) Type() string {
	return "mode"
}

// applyColor sets the global color mode. In auto mode color is used only
// when stderr is a terminal and NO_COLOR is unset.
func applyColor(opts *Options) {
	switch opts.Color {
	case constants.ColorAlways:
		color.NoColor = false
	case constants.ColorNever:
		color.NoColor = true
	default:
		color.NoColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd()))
	}
}
