package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

type Model struct {
	globalHelp  []HelpEntry
	viewHelp    []HelpEntry
	width       int
	minColWidth int
}

const defaultMinColWidth = 20

// logo rendered at the right edge of the bar.
const logo = `    ____      ___
   / __/___  / (_)___
  / /_/ __ \/ / / __ \
 / __/ /_/ / / / /_/ /
/_/   \____/_/_/\____/`

const logoWidth = 26

func New(width int) *Model {
	return &Model{
		globalHelp:  []HelpEntry{{Key: "q", Desc: "quit"}, {Key: "?", Desc: "help"}},
		width:       width,
		minColWidth: defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

// View renders the bar: status block on the left, contextual help columns
// in the middle, logo on the right. Help entries flow top-to-bottom, five
// rows per column; columns that do not fit are dropped.
func (m *Model) View(statusInfo string) string {
	allHelp := append(m.globalHelp, m.viewHelp...)
	if len(allHelp) == 0 {
		return statusInfo
	}

	infoWidth := lipgloss.Width(statusInfo)
	availableWidth := m.width - infoWidth - logoWidth
	if availableWidth < m.minColWidth {
		// Not enough space to render help, just return the status block
		return statusInfo
	}

	rowsPerColumn := 5
	numCols := (len(allHelp) + rowsPerColumn - 1) / rowsPerColumn

	maxCols := availableWidth / m.minColWidth
	if maxCols < 1 {
		maxCols = 1
	}
	if numCols > maxCols {
		numCols = maxCols
	}

	// Prepare columns filled top-to-bottom
	columns := make([][]HelpEntry, numCols)
	for i, entry := range allHelp {
		col := i / rowsPerColumn
		if col >= numCols {
			break
		}
		columns[col] = append(columns[col], entry)
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	var renderedCols []string
	for colIdx, col := range columns {
		// Align descriptions on the widest key of the column.
		maxKeyLen := 0
		for _, entry := range col {
			keyText := "<" + entry.Key + ">"
			if keyLen := lipgloss.Width(keyText); keyLen > maxKeyLen {
				maxKeyLen = keyLen
			}
		}

		var lines []string
		for _, entry := range col {
			styledKey := keyStyle.Render("<" + entry.Key + ">")
			keyText := "<" + entry.Key + ">"
			padding := maxKeyLen - lipgloss.Width(keyText)
			lines = append(lines, styledKey+strings.Repeat(" ", padding+2)+entry.Desc)
		}

		if colIdx > 0 {
			renderedCols = append(renderedCols, "   ")
		}
		renderedCols = append(renderedCols, strings.Join(lines, "\n"))
	}

	helpBlock := lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...)

	helpAligned := lipgloss.NewStyle().
		Width(availableWidth).
		Align(lipgloss.Left).
		Render(helpBlock)

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("180")).
		Bold(true)

	return lipgloss.JoinHorizontal(lipgloss.Top, statusInfo, helpAligned, "  ", logoStyle.Render(logo))
}
