package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spiffcs/timewarp/internal/duration"
	"github.com/spiffcs/timewarp/internal/format"
)

// NewCmdUnits creates the units command.
func NewCmdUnits() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the units accepted in offsets",
		Long: `List every unit accepted in an offset expression with its spellings.
Units match case-insensitively. A bare "m" means minutes; use "mo" for months.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := [][]string{{style(headerStyle, "unit"), style(headerStyle, "length"), style(headerStyle, "spellings")}}
			for _, u := range duration.Units() {
				length := "calendar"
				if u.Fixed() {
					length = u.Length().String()
				}
				rows = append(rows, []string{u.String(), length, strings.Join(u.Words(), ", ")})
			}
			for _, line := range format.Columns(rows, format.AlignLeft, format.AlignRight) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
