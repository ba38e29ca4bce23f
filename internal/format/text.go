// Package format provides shared text formatting utilities for terminal output.
package format

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripAnsi removes ANSI escape sequences from a string.
func StripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// DisplayWidth returns the visible width of a string in terminal columns,
// ignoring ANSI escape sequences.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(StripAnsi(s))
}

// PadRight pads a string with spaces to reach the target visible width.
func PadRight(s string, targetWidth int) string {
	width := DisplayWidth(s)
	if width >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-width)
}

// PadLeft right-aligns a string within the target visible width.
func PadLeft(s string, targetWidth int) string {
	width := DisplayWidth(s)
	if width >= targetWidth {
		return s
	}
	return strings.Repeat(" ", targetWidth-width) + s
}

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Columns lays out rows as space-separated columns sized to the widest
// cell. Styled cells are measured without their escape codes. The last
// column is not padded when left-aligned.
func Columns(rows [][]string, align ...Align) []string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], DisplayWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			switch {
			case i < len(align) && align[i] == AlignRight:
				b.WriteString(PadLeft(cell, widths[i]))
			case i == len(row)-1:
				b.WriteString(cell)
			default:
				b.WriteString(PadRight(cell, widths[i]))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
