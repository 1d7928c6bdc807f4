package commandinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the command bar, completion candidates and the optional
// error line.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	cmdBarStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("#303030")).
		Foreground(lipgloss.Color("#00d7ff")).
		Padding(0, 1)

	view := cmdBarStyle.Render(m.input.View())

	if len(m.suggestions) > 0 {
		plain := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		active := lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true)

		parts := make([]string, len(m.suggestions))
		for i, s := range m.suggestions {
			if i == m.selected {
				parts[i] = active.Render(s)
			} else {
				parts[i] = plain.Render(s)
			}
		}
		view += "\n" + "  " + strings.Join(parts, "  ")
	}

	if m.errorMsg != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true).
			Padding(0, 1)
		view += "\n" + errStyle.Render(m.errorMsg)
	}

	return view
}
