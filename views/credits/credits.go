// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package creditsview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/ui"
	"folio/views/helpbar"
	"folio/views/view"
)

const ViewName = view.NameCredits

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("180"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the credits screen: app identity plus the projects it leans on.
type Model struct {
	width   int
	height  int
	version string
}

func New(width, height int, version string) *Model {
	return &Model{width: width, height: height, version: version}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return ViewName }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}
	return nil
}

func (m *Model) View() string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("folio %s", m.version)),
		"",
		"a book reader for the terminal",
		"",
		dimStyle.Render("built with"),
		"  Bubble Tea",
		"  Lip Gloss",
		"  SQLite",
		"",
		dimStyle.Render("press esc to go back"),
	}
	box := ui.RenderFramedBox("Credits", "", strings.Join(lines, "\n"), "", 44)
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "esc", Desc: "back"},
	}
}
