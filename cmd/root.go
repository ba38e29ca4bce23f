package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spiffcs/timewarp/internal/compare"
	"github.com/spiffcs/timewarp/internal/constants"
	"github.com/spiffcs/timewarp/internal/log"
	"github.com/spiffcs/timewarp/internal/service"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := NewOptions()

	rootCmd := &cobra.Command{
		Use:   constants.AppName + " <gt|lt|eq|ge|le>",
		Short: "Compare timestamps against a reference time plus an offset",
		Long: `Compare sample timestamps against a reference time shifted by a
human-readable offset, printing true or false for each sample.

Samples come from --comp-timeorfile: a timestamp, a file with one
timestamp per line, or standard input when omitted.`,
		Example: `  timewarp -r "Fri May 13 03:13:06 2022" -o "1 days" -c "Sat May 14 03:13:06 2022" eq
  timewarp -o "15 days 20 seconds 100 milliseconds" -c stamps.txt gt
  journal-stamps | timewarp -o "-2h" ge`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			applyColor(opts)
			log.Initialize(opts.Verbosity, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fmt.Errorf("%w: comparison operator (gt, lt, eq, ge, le); see '%s --help'",
				service.ErrMissingArgument, constants.AppName)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addCompareFlags(rootCmd, opts)

	// One subcommand per operator; they differ only in the operator value.
	for _, op := range compare.Operators() {
		rootCmd.AddCommand(NewCmdCompare(op, opts))
	}
	rootCmd.AddCommand(NewCmdExplain(opts))
	rootCmd.AddCommand(NewCmdUnits())
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
