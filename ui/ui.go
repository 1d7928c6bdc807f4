package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles (you can override these per-view if desired)
var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180")).
			Bold(true)

	FrameHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("144")).
				Bold(true)

	FrameBorderColor = lipgloss.Color("137")

	// Rainbow colors the breadcrumb segments of the navigation stack bar.
	Rainbow = []lipgloss.Style{
		lipgloss.NewStyle().Background(lipgloss.Color("94")).Foreground(lipgloss.Color("230")),
		lipgloss.NewStyle().Background(lipgloss.Color("137")).Foreground(lipgloss.Color("230")),
		lipgloss.NewStyle().Background(lipgloss.Color("180")).Foreground(lipgloss.Color("235")),
		lipgloss.NewStyle().Background(lipgloss.Color("222")).Foreground(lipgloss.Color("235")),
	}

	// StatusBarStyle renders transient toast lines inside frame footers.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")).
			Padding(0, 1)
)

// RenderFramedBox draws a bordered frame: a top border carrying the
// centered title, an optional header row, the content lines, and an
// optional footer block above the bottom border. width <= 0 sizes the
// frame to the widest line plus padding. ANSI sequences in content are
// preserved.
func RenderFramedBox(title, header, content, footer string, width int) string {
	rows := strings.Split(content, "\n")
	var footerRows []string
	if footer != "" {
		footerRows = strings.Split(footer, "\n")
	}

	if width <= 0 {
		widest := 0
		for _, l := range append(rows, footerRows...) {
			if w := lipgloss.Width(l); w > widest {
				widest = w
			}
		}
		width = widest + 4
	}
	inner := width - 2

	border := lipgloss.NewStyle().Foreground(FrameBorderColor)
	var b strings.Builder

	titled := FrameTitleStyle.Render(" " + title + " ")
	left := (inner - lipgloss.Width(titled)) / 2
	if left < 0 {
		left = 0
	}
	right := inner - left - lipgloss.Width(titled)
	if right < 0 {
		right = 0
	}
	b.WriteString(border.Render("╭"))
	b.WriteString(border.Render(strings.Repeat("─", left)))
	b.WriteString(titled)
	b.WriteString(border.Render(strings.Repeat("─", right)))
	b.WriteString(border.Render("╮"))

	row := func(line string) {
		b.WriteString("\n")
		b.WriteString(border.Render("│"))
		b.WriteString(padLine(line, inner))
		b.WriteString(border.Render("│"))
	}

	if header != "" {
		row(FrameHeaderStyle.Render(header))
	}
	for _, l := range rows {
		row(l)
	}
	for _, l := range footerRows {
		row(l)
	}

	b.WriteString("\n")
	b.WriteString(border.Render("╰"))
	b.WriteString(border.Render(strings.Repeat("─", inner)))
	b.WriteString(border.Render("╯"))
	return b.String()
}

// RenderColumnHeader renders one header row, each label padded or cut to
// its column width. Lengths beyond len(widths) are ignored.
func RenderColumnHeader(labels []string, widths []int) string {
	var b strings.Builder
	for i, label := range labels {
		if i >= len(widths) {
			break
		}
		b.WriteString(padLine(FrameHeaderStyle.Render(label), widths[i]))
	}
	return b.String()
}

// RenderFramedBoxHeight is RenderFramedBox with the content padded or cut
// to an exact number of inner lines, so the frame has a fixed height.
func RenderFramedBoxHeight(title, header, content, footer string, width, contentLines int) string {
	lines := SplitLines(content, contentLines)
	return RenderFramedBox(title, header, strings.Join(lines, "\n"), footer, width)
}

// padLine fits one row to the frame interior, styling intact.
func padLine(line string, width int) string {
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}

// OverlayCentered draws overlay centered on top of base. The base block is
// padded to width x height first, so the overlay lands in the middle of the
// terminal area rather than the middle of whatever base happens to render.
func OverlayCentered(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}
	canvas := SplitLines(FitCanvas(base, width, height), height)

	overlayLines := SplitLines(overlay, 0)
	overlayWidth := MaxLineWidth(overlayLines)
	if overlayWidth == 0 || len(overlayLines) == 0 {
		return base
	}

	x := (width - overlayWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(overlayLines)) / 2
	if y < 0 {
		y = 0
	}

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		line = PadRight(line, overlayWidth)

		left := TakeColumns(canvas[row], x)
		left = PadRight(left, x)
		right := DropColumns(canvas[row], x+overlayWidth)

		canvas[row] = PadRight(left+line+right, width)
	}

	return strings.Join(canvas, "\n")
}
