package helpview

import (
	"github.com/charmbracelet/lipgloss"

	"folio/ui"
)

func footer() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#808080")).
		Render("[press esc to go back]")
}

func (m *Model) layout() {
	spec := ui.ComputeFrameDimensions(m.width, m.height, "", footer())
	m.viewport.Width = spec.FrameWidth - 4
	m.viewport.Height = spec.DesiredContentLines
	m.viewport.SetContent(m.content)
}

func (m *Model) View() string {
	return ui.RenderFramedBoxHeight("Help", "", m.viewport.View(), footer(), m.width, m.viewport.Height)
}
