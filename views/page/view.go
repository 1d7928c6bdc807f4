package pageview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/ui"
	"folio/ui/components/errordialog"
	"folio/utils"
)

var (
	bylineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("144"))
	toastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("179")).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (m *Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	frame := ui.ComputeFrameDimensions(m.width, m.height, header, footer)

	var content string
	switch {
	case m.err != nil:
		content = ""
	case !m.ready:
		content = dimStyle.Render(" opening page...")
	default:
		content = m.viewport.View()
	}

	framed := ui.RenderFramedBoxHeight(m.params.Book.Title, header, content, footer, frame.FrameWidth, frame.DesiredContentLines)

	if m.err != nil {
		framed = ui.OverlayCentered(framed, errordialog.Render(m.err.Error()), frame.FrameWidth, frame.FrameHeight)
	}
	if m.gotoDialog.Visible {
		framed = ui.OverlayCentered(framed, m.gotoDialog.View(), frame.FrameWidth, frame.FrameHeight)
	}
	return framed
}

func (m *Model) renderHeader() string {
	byline := m.params.Book.Author
	if m.params.Book.Year != 0 {
		byline = fmt.Sprintf("%s (%d)", byline, m.params.Book.Year)
	}
	if byline == "" {
		return ""
	}
	return bylineStyle.Render(" " + byline)
}

func (m *Model) renderFooter() string {
	status := m.pageLabel()
	if m.ready && m.viewport.TotalLineCount() > m.viewport.Height {
		status += fmt.Sprintf("  %d%%", int(m.viewport.ScrollPercent()*100))
	}
	bar := ui.StatusBarStyle.Render(status)

	switch {
	case m.searching:
		return bar + "\n" + ui.StatusBarStyle.Render("Search (type then Enter): "+m.searchTerm)
	case m.toast != "" && time.Now().Before(m.toastDeadline):
		return bar + "\n" + toastStyle.Render(m.toast)
	case m.searchTerm != "":
		return bar + "\n" + ui.StatusBarStyle.Render("Search: "+m.searchTerm+"  (esc clears)")
	}
	return bar
}

// layout re-derives the viewport size from the frame chrome and re-renders
// the wrapped text into it.
func (m *Model) layout() {
	header := m.renderHeader()
	footer := m.renderFooter()
	frame := ui.ComputeFrameDimensions(m.width, m.height, header, footer)

	m.viewport.Width = frame.FrameWidth - 4
	m.viewport.Height = frame.DesiredContentLines
	m.refreshContent()
}

// wrappedText reflows the page to the viewport width, unstyled.
func (m *Model) wrappedText() string {
	w := m.viewport.Width
	if w <= 0 {
		w = 76
	}
	return lipgloss.NewStyle().Width(w).Render(m.text)
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	wrapped := m.wrappedText()
	if m.searchTerm != "" {
		matches := utils.FindAllMatches(wrapped, m.searchTerm)
		wrapped = utils.HighlightMatches(wrapped, m.searchTerm, matches)
	}
	m.viewport.SetContent(wrapped)
}

// applySearch re-renders with highlights and scrolls to the first hit.
func (m *Model) applySearch() tea.Cmd {
	if m.searchTerm == "" {
		m.refreshContent()
		return nil
	}
	plain := m.wrappedText()
	matches := utils.FindAllMatches(plain, m.searchTerm)
	m.refreshContent()
	if len(matches) == 0 {
		return m.setToast(fmt.Sprintf("no matches for %q", m.searchTerm))
	}
	m.viewport.SetYOffset(strings.Count(plain[:matches[0]], "\n"))
	return nil
}
