package errordialog

import (
	"github.com/charmbracelet/lipgloss"
)

// Error overlay. The shelf, book and page screens all draw scan and load
// failures through this one block so errors look the same everywhere. Key
// hints stay out of the block; the help bar of the screen underneath
// already carries them.

const maxTextWidth = 60

var (
	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("124")).
			Padding(0, 1)
)

// Render draws msg inside a red rounded frame, wrapped to a readable width.
func Render(msg string) string {
	text := msg
	if lipgloss.Width(msg) > maxTextWidth {
		text = lipgloss.NewStyle().Width(maxTextWidth).Render(msg)
	}
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		badgeStyle.Render("Error"),
		"",
		text,
	))
}
