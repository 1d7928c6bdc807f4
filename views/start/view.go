package startview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/library"
	"folio/ui"
	"folio/ui/components/errordialog"
	filterlist "folio/ui/components/filterable/list"
	"folio/ui/components/sorting"
)

const colGap = 2

var (
	titleColStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	authorColStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("144"))
	dimColStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true)
)

func (m *Model) View() string {
	if m.state == stateLoading {
		return m.loading.View()
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	frame := ui.ComputeFrameDimensions(m.width, m.height, header, footer)

	content := m.List.VisibleContent(frame.DesiredContentLines)
	framed := ui.RenderFramedBox("Shelf: "+m.libraryRoot, header, content, footer, frame.FrameWidth)

	if m.state == stateError && m.err != nil {
		framed = ui.OverlayCentered(framed, errordialog.Render(m.err.Error()), frame.FrameWidth, frame.FrameHeight)
	}
	return framed
}

// columnWidths fits the six shelf columns to the frame interior; title and
// author absorb whatever width is left over.
func (m *Model) columnWidths() []int {
	inner := m.width - 2
	cols := []int{24, 18, 6, 7, 9, 16}
	return ui.FitColumns(inner, colGap, cols, 0, 1)
}

func (m *Model) renderHeader() string {
	labels := []string{" TITLE", "AUTHOR", "YEAR", "PAGES", "WORDS", "LAST READ"}
	if i := int(m.sortField); i < len(labels) {
		labels[i] += " " + sorting.SortArrow(m.order())
	}

	widths := m.columnWidths()
	rendered := make([]int, len(widths))
	for i := range widths {
		rendered[i] = widths[i]
		if i < len(widths)-1 {
			rendered[i] += colGap
		}
	}
	return ui.RenderColumnHeader(labels, rendered)
}

func (m *Model) renderFooter() string {
	pos := 0
	if len(m.List.Filtered) > 0 {
		pos = m.List.Cursor + 1
	}
	status := fmt.Sprintf("Book %d of %d", pos, len(m.List.Filtered))
	if hint := m.continueHint(); hint != "" {
		status += "   Continue: " + hint
	}
	if m.deepLink != "" {
		status += "   Link: " + m.deepLink
	}
	bar := ui.StatusBarStyle.Render(status)

	switch {
	case m.List.Mode == filterlist.ModeSearching:
		return bar + "\n" + ui.StatusBarStyle.Render("Filter (type then Enter): "+m.List.Query)
	case m.List.Query != "":
		return bar + "\n" + ui.StatusBarStyle.Render("Filter: "+m.List.Query)
	}
	return bar
}

func (m *Model) renderBookRow(b library.Book, selected bool) string {
	widths := m.columnWidths()

	year := "-"
	if b.Year != 0 {
		year = strconv.Itoa(b.Year)
	}
	last := "-"
	if p, ok := m.lastRead(b.ID); ok {
		last = fmt.Sprintf("p.%d %s", p.Page, relTime(p.UpdatedAt))
	}

	cells := []string{
		" " + ansi.Truncate(b.Title, widths[0]-1, "…"),
		ansi.Truncate(b.Author, widths[1], "…"),
		year,
		strconv.Itoa(b.PageCount()),
		strconv.Itoa(b.Words),
		ansi.Truncate(last, widths[5], "…"),
	}
	for i := range cells {
		cells[i] = ui.PadRight(cells[i], widths[i])
	}

	gap := strings.Repeat(" ", colGap)
	if selected {
		return selectedStyle.Render(strings.Join(cells, gap))
	}

	styled := []string{
		titleColStyle.Render(cells[0]),
		authorColStyle.Render(cells[1]),
		dimColStyle.Render(cells[2]),
		cells[3],
		cells[4],
		dimColStyle.Render(cells[5]),
	}
	return strings.Join(styled, gap)
}

// relTime renders a compact relative timestamp for the LAST READ column.
func relTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	}
	return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
}
