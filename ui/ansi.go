package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ANSI-aware line helpers shared by the overlay renderer and the
// navigation transition compositor. All widths are visible columns,
// not byte counts.

// PadRight fits a line to exactly width columns, truncating or padding
// with spaces as needed. Styling sequences are preserved.
func PadRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// DropColumns removes the leftmost cols visible columns from a line.
func DropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

// TakeColumns keeps only the leftmost cols visible columns of a line.
func TakeColumns(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	return ansi.Truncate(s, cols, "")
}

// SplitLines splits a block into lines, truncating or padding with empty
// lines to exactly height when height > 0.
func SplitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// MaxLineWidth returns the widest visible line of a block.
func MaxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// FitCanvas pads a block to exactly width x height columns and lines.
func FitCanvas(s string, width, height int) string {
	lines := SplitLines(s, height)
	for i := range lines {
		lines[i] = PadRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// StripStyles removes all styling sequences from a block.
func StripStyles(s string) string {
	return ansi.Strip(s)
}
