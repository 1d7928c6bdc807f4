package ui

import (
	"github.com/briandowns/spinner"
)

// The shelf status block ticks its own spinner frame counter instead of
// running a bubbles spinner, so it only needs the glyph for frame n.
const spinnerCharset = 14

// SpinnerCharAt returns the spinner glyph for the given frame index.
func SpinnerCharAt(frame int) string {
	frames := spinner.CharSets[spinnerCharset]
	if len(frames) == 0 {
		return "…"
	}
	return string(frames[frame%len(frames)])
}
