package loadingview

import (
	"fmt"
	"strings"

	"folio/ui"
	"folio/views/helpbar"
	"folio/views/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const ViewName = view.NameLoading

// Model is the shelf-scan loading indicator. It satisfies the view
// interface but is not a flow destination: the start screen embeds it
// while the first scan runs, so the flow's first destination stays
// what it should be.
type Model struct {
	width, height int
	title         string
	message       string
	spinner       spinner.Model
	visible       bool
}

func New(width, height int, visible bool, message string) *Model {
	if message == "" {
		message = "Please wait..."
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.FrameBorderColor)
	return &Model{width: width, height: height, title: "Loading", message: message, spinner: s, visible: visible}
}

func (m *Model) SetVisible(v bool) { m.visible = v }
func (m *Model) Init() tea.Cmd     { return m.spinner.Tick }
func (m *Model) Name() string      { return ViewName }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	content := strings.TrimSpace(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
	box := ui.RenderFramedBox(m.title, "", content, "", 0) // minimal width
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "q", Desc: "quit"},
	}
}

func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }
