package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spiffcs/timewarp/internal/duration"
	"github.com/spiffcs/timewarp/internal/format"
	"github.com/spiffcs/timewarp/internal/service"
	"github.com/spiffcs/timewarp/internal/timestamp"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

// NewCmdExplain creates the explain command.
func NewCmdExplain(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [offset]",
		Short: "Show how an offset is parsed and where it moves the reference time",
		Long: `Break an offset expression into its tokens, show what each one
contributes, and print the reference time before and after the offset.

The offset is taken from the argument, or from --offset when omitted.`,
		Example: `  timewarp explain "15 days 20 seconds 100 milliseconds"
  timewarp explain -r "Fri May 13 03:13:06 2022" "1mo -1d"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runExplain(cmd, opts, args[0])
			}
			if err := requireOffset(cmd); err != nil {
				return err
			}
			return runExplain(cmd, opts, opts.Offset)
		},
	}
}

func runExplain(cmd *cobra.Command, opts *Options, offset string) error {
	s, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	res, err := service.New().Resolve(opts.RefTime, offset, s.format)
	if err != nil {
		return err
	}
	tokens, err := duration.Tokenize(offset)
	if err != nil {
		return err
	}

	rows := [][]string{{style(headerStyle, "token"), style(headerStyle, "unit"), style(headerStyle, "offset")}}
	for _, tok := range tokens {
		d, err := tok.Duration()
		if err != nil {
			return err
		}
		rows = append(rows, []string{tok.Raw, tok.Unit.String(), d.String()})
	}
	rows = append(rows, []string{style(totalStyle, "total"), "", style(totalStyle, res.Offset.String())})

	w := cmd.OutOrStdout()
	for _, line := range format.Columns(rows) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
	printTimes(w, res, s.format)
	return nil
}

func printTimes(w io.Writer, res service.Resolution, layout string) {
	rows := [][]string{
		{style(labelStyle, "reference"), timestamp.Format(res.Reference, layout)},
		{style(labelStyle, "adjusted"), timestamp.Format(res.Adjusted, layout)},
	}
	if res.Offset.HasCalendar() {
		rows = append(rows, []string{style(labelStyle, "elapsed"), res.Adjusted.Sub(res.Reference).String()})
	}
	for _, line := range format.Columns(rows) {
		fmt.Fprintln(w, line)
	}
}

// style renders s with st unless color output is disabled.
func style(st lipgloss.Style, s string) string {
	if color.NoColor {
		return s
	}
	return st.Render(s)
}
