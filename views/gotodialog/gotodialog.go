package gotodialog

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ResultMsg struct {
	Confirmed bool
	Page      int
}

// Model is the jump-to-page dialog embedded in the page screen. Digits
// edit the target directly; arrows step it within the book's bounds.
type Model struct {
	Visible   bool
	BookTitle string
	Page      int
	Total     int
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("180")).Padding(0, 1)
	bodyStyle  = lipgloss.NewStyle().Padding(1, 2)
	pageStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("222")).Align(lipgloss.Center).Padding(1, 0)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 2)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("137")).Bold(true)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("137"))
)

func New() *Model {
	return &Model{}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Visible {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.Page < m.Total {
			m.Page++
		}
		return nil
	case "down", "j":
		if m.Page > 1 {
			m.Page--
		}
		return nil
	case "backspace":
		m.Page /= 10
		return nil
	case "enter":
		if m.Page < 1 || m.Page > m.Total {
			// Out-of-range input stays open for correction.
			return nil
		}
		m.Visible = false
		page := m.Page
		return func() tea.Msg {
			return ResultMsg{Confirmed: true, Page: page}
		}
	case "esc":
		m.Visible = false
		return func() tea.Msg {
			return ResultMsg{Confirmed: false, Page: m.Page}
		}
	}

	if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
		r := keyMsg.Runes[0]
		if r >= '0' && r <= '9' {
			next := m.Page*10 + int(r-'0')
			// Typing past the last page clamps rather than rejecting, so
			// "99" on a 42-page book lands on 42.
			if next > m.Total {
				next = m.Total
			}
			m.Page = next
		}
	}
	return nil
}

func (m *Model) View() string {
	if !m.Visible {
		return ""
	}

	w := 46
	if tw := lipgloss.Width(m.BookTitle) + 14; tw > w {
		w = tw
	}

	hint := fmt.Sprintf("%s digits • %s/%s step • %s jump • %s cancel",
		keyStyle.Render("<0-9>"),
		keyStyle.Render("<↑>"),
		keyStyle.Render("<↓>"),
		keyStyle.Render("<Enter>"),
		keyStyle.Render("<Esc>"))

	return frameStyle.Width(w + 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Width(w).Render(" Go to page "),
		bodyStyle.Width(w).Render(m.BookTitle),
		pageStyle.Width(w).Render(fmt.Sprintf("Page: %d / %d", m.Page, m.Total)),
		hintStyle.Width(w).Render(hint),
	))
}

// Show opens the dialog for a book, starting from the current page.
func (m *Model) Show(bookTitle string, current, total int) *Model {
	m.Visible = true
	m.BookTitle = bookTitle
	m.Page = current
	m.Total = total
	return m
}
