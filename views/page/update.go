package pageview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/nav"
	"folio/views/gotodialog"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case ContentMsg:
		if msg.Page != m.params.Page {
			// A reply for a page this screen no longer shows.
			return nil
		}
		if msg.Err != nil {
			l().Errorf("reading %s page %d: %v", m.params.Book.Slug, msg.Page, msg.Err)
			m.err = msg.Err
			return nil
		}
		m.text = msg.Text
		m.ready = true
		m.err = nil
		m.layout()
		m.viewport.GotoTop()
		return nil

	case toastExpiredMsg:
		if !time.Now().Before(m.toastDeadline) {
			m.toast = ""
		}
		return nil

	case gotodialog.ResultMsg:
		if !msg.Confirmed || msg.Page == m.params.Page {
			return nil
		}
		m.params.Haptics.Buzz()
		return m.params.BookNav.Replace(nav.Page(msg.Page), nil)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.gotoDialog.Visible {
		return m.gotoDialog.Update(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.err != nil {
		if msg.Type == tea.KeyEnter {
			m.err = nil
			return loadContentCmd(m.params.Content, m.params.Book, m.params.Page)
		}
		return nil
	}

	switch msg.String() {
	case "right", "l", " ", "n":
		return m.turnForward()
	case "left", "h", "p":
		return m.turnBackward()
	case "g":
		m.gotoDialog.Show(m.params.Book.Title, m.params.Page, m.params.Total)
	case "/":
		m.searching = true
		m.searchTerm = ""
	case "x":
		return m.params.RootNav.Back()
	case "j", "down":
		m.viewport.LineDown(1)
	case "k", "up":
		m.viewport.LineUp(1)
	case "pgdown", "d":
		m.viewport.HalfViewDown()
	case "pgup", "u":
		m.viewport.HalfViewUp()
	case "home":
		m.viewport.GotoTop()
	case "end":
		m.viewport.GotoBottom()
	}
	return nil
}

// turnForward replaces this page with the next one. At the last page the
// turn is not offered; the reader gets a bump instead.
func (m *Model) turnForward() tea.Cmd {
	if m.params.Page >= m.params.Total {
		m.params.Haptics.Buzz()
		return m.setToast("already at the last page")
	}
	m.params.Haptics.Buzz()
	return m.params.BookNav.Replace(nav.Page(m.params.Page+1), nil)
}

func (m *Model) turnBackward() tea.Cmd {
	if m.params.Page <= 1 {
		m.params.Haptics.Buzz()
		return m.setToast("already at the first page")
	}
	m.params.Haptics.Buzz()
	return m.params.BookNav.Replace(nav.Page(m.params.Page-1), nil)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyRunes:
		m.searchTerm += string(msg.Runes)
	case tea.KeySpace:
		m.searchTerm += " "
	case tea.KeyBackspace:
		if len(m.searchTerm) > 0 {
			m.searchTerm = m.searchTerm[:len(m.searchTerm)-1]
		}
	case tea.KeyEnter:
		m.searching = false
		return m.applySearch()
	case tea.KeyEsc:
		m.searching = false
		m.searchTerm = ""
		m.refreshContent()
	}
	return nil
}
