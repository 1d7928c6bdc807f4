package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// StatusStyle frames the shelf status block beside the help bar.
var StatusStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#00FF00")).
	Padding(0, 1).
	Width(50)
