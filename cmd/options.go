package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spiffcs/timewarp/config"
	"github.com/spiffcs/timewarp/internal/constants"
	"github.com/spiffcs/timewarp/internal/service"
)

// Options holds the shared command-line options for the timewarp CLI.
type Options struct {
	RefTime        string // Reference timestamp; empty means now
	Offset         string // Duration expression added to the reference
	CompTimeOrFile string // Literal sample, file path, or "-" for stdin
	Format         string // strftime format for reference and samples
	KeepGoing      bool   // Skip malformed samples instead of stopping
	Verbosity      int
	Color          string // auto, always, never
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Color: constants.ColorAuto,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRefTime sets the reference timestamp.
func WithRefTime(ref string) Option {
	return func(o *Options) {
		o.RefTime = ref
	}
}

// WithOffset sets the duration expression (e.g., "15 days 20 seconds").
func WithOffset(offset string) Option {
	return func(o *Options) {
		o.Offset = offset
	}
}

// WithFormat sets the timestamp format.
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithKeepGoing skips malformed samples instead of stopping.
func WithKeepGoing(keepGoing bool) Option {
	return func(o *Options) {
		o.KeepGoing = keepGoing
	}
}

// addCompareFlags adds the comparison flags as persistent flags so they
// may appear before or after the operator subcommand.
func addCompareFlags(cmd *cobra.Command, opts *Options) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.RefTime, "ref-time", "r", opts.RefTime, "Reference time the offset is added to (default: now)")
	flags.StringVarP(&opts.Offset, "offset", "o", opts.Offset,
		`Offset added to the reference time, e.g. "15 days 20 seconds 100 milliseconds"
units: nanoseconds microseconds milliseconds seconds minutes hours days weeks months years`)
	flags.StringVarP(&opts.CompTimeOrFile, "comp-timeorfile", "c", "",
		`Sample time, or a file of sample times one per line, compared to reference + offset ("-" or omitted: stdin)`)
	flags.StringVarP(&opts.Format, "format", "f", opts.Format, `strftime format of reference and sample times (default "%a %b %e %T %Y")`)
	flags.BoolVarP(&opts.KeepGoing, "keep-going", "k", opts.KeepGoing, "Report malformed samples and continue instead of stopping at the first")
	flags.CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	flags.Var(newColorFlag(opts), "color", "Colorize diagnostics (auto, always, never)")
}

// settings resolves the effective format and keep-going mode: explicit
// flags win over the config file, which wins over built-in defaults.
type settings struct {
	format    string
	keepGoing bool
}

func resolveSettings(cmd *cobra.Command, opts *Options) (settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return settings{}, err
	}

	s := settings{
		format:    cfg.TimestampFormat(),
		keepGoing: cfg.ShouldKeepGoing(),
	}
	if cmd.Flags().Changed("format") {
		s.format = opts.Format
	}
	if cmd.Flags().Changed("keep-going") {
		s.keepGoing = opts.KeepGoing
	}
	return s, nil
}

// requireOffset reports a missing --offset. An explicit empty value is
// left to the duration parser.
func requireOffset(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("offset") {
		return fmt.Errorf("%w: --offset", service.ErrMissingArgument)
	}
	return nil
}
