package ui

import "strings"

// FrameSpec captures the calculated dimensions for a framed screen.
type FrameSpec struct {
	FrameWidth          int
	FrameHeight         int
	DesiredContentLines int
}

// ComputeFrameDimensions derives consistent frame sizing across screens.
//
// width/height are the usable dimensions the app hands down (already less
// the helpbar and breadcrumb chrome); header/footer are rendered strings
// used to count occupied lines. The inner content line budget is whatever
// the two border rows, header and footer leave over (never negative).
func ComputeFrameDimensions(width, height int, header, footer string) FrameSpec {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	headerLines := 0
	if header != "" {
		headerLines = len(strings.Split(header, "\n"))
	}
	footerLines := 0
	if footer != "" {
		footerLines = len(strings.Split(footer, "\n"))
	}

	desiredContentLines := height - 2 - headerLines - footerLines
	if desiredContentLines < 0 {
		desiredContentLines = 0
	}

	return FrameSpec{
		FrameWidth:          width,
		FrameHeight:         height,
		DesiredContentLines: desiredContentLines,
	}
}
