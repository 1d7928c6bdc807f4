package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Transition frame compositing. These are pure functions over rendered
// frames; the nav package decides when and with what progress to call them.

// fadeRamp is the grayscale foreground ramp used while a frame fades in
// or out. Terminal cells have no alpha, so fading re-renders the stripped
// frame through progressively brighter grays.
var fadeRamp = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// FadeFrame renders a frame at visibility p in [0,1]. At p >= 1 the frame
// is returned untouched, styling intact; below that the frame is stripped
// and re-colored on the grayscale ramp.
func FadeFrame(s string, p float64) string {
	if p >= 1 {
		return s
	}
	if p < 0 {
		p = 0
	}
	step := int(p * float64(len(fadeRamp)))
	if step >= len(fadeRamp) {
		step = len(fadeRamp) - 1
	}
	style := fadeRamp[step]

	lines := strings.Split(StripStyles(s), "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// SlideFrame composes one animation frame of a horizontal slide between
// two rendered frames. offset is how many columns the transition has
// travelled, from 0 (all old) to width (all new).
//
// forward slides the new frame in from the trailing (right) edge while the
// old frame exits toward the leading (left) edge; backward mirrors both
// directions.
func SlideFrame(old, new string, width, height, offset int, forward bool) string {
	if width <= 0 {
		return new
	}
	if offset < 0 {
		offset = 0
	}
	if offset > width {
		offset = width
	}

	oldLines := SplitLines(FitCanvas(old, width, height), height)
	newLines := SplitLines(FitCanvas(new, width, height), height)

	out := make([]string, height)
	for i := 0; i < height; i++ {
		if forward {
			left := PadRight(DropColumns(oldLines[i], offset), width-offset)
			right := PadRight(TakeColumns(newLines[i], offset), offset)
			out[i] = left + right
		} else {
			left := PadRight(DropColumns(newLines[i], width-offset), offset)
			right := PadRight(TakeColumns(oldLines[i], width-offset), width-offset)
			out[i] = left + right
		}
	}
	return strings.Join(out, "\n")
}
