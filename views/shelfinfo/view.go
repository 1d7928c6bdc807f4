package shelfinfoview

import "folio/styles"

// Height is the fixed number of terminal rows the status block occupies.
// The app subtracts it when sizing the active screen.
const Height = 6

func (m Model) View() string {
	return styles.StatusStyle.Height(Height).Render(m.content)
}
