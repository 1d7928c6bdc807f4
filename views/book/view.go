package bookview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"folio/ui"
	"folio/ui/components/errordialog"
)

func (m *Model) View() string {
	if m.err != nil {
		return m.centered(errordialog.Render(m.err.Error()))
	}
	if !m.resolved {
		box := ui.RenderFramedBox("Open book", "", fmt.Sprintf("  looking for %q...  ", m.query), "", 0)
		return m.centered(box)
	}

	out := m.flow.View()
	if m.confirm.Visible {
		out = ui.OverlayCentered(out, m.confirm.View(), m.width, m.height)
	}
	return out
}

func (m *Model) centered(block string) string {
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}
