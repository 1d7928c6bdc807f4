package helpview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/views/helpbar"
)

// CommandInfo is one ':' prompt verb for the listing. The app builds the
// slice from the command registry so this package stays presentation only.
type CommandInfo struct {
	Name        string
	Description string
}

// KeyInfo is one reading key for the listing.
type KeyInfo struct {
	Key  string
	Desc string
}

type Model struct {
	width  int
	height int

	viewport viewport.Model
	content  string
}

var sectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#00d7ff"))

// DefaultKeys is the reading key reference shown below the command list.
var DefaultKeys = []KeyInfo{
	{Key: "enter", Desc: "open the selected book"},
	{Key: "/", Desc: "filter the shelf"},
	{Key: "c", Desc: "clear the selected book's progress"},
	{Key: "right, l, space, n", Desc: "next page"},
	{Key: "left, h, p", Desc: "previous page"},
	{Key: "g", Desc: "go to page"},
	{Key: "j, k", Desc: "scroll within a page"},
	{Key: "x", Desc: "close the book"},
	{Key: ":", Desc: "command prompt"},
	{Key: "esc", Desc: "back"},
	{Key: "q", Desc: "quit"},
}

func New(width, height int, cmds []CommandInfo) *Model {
	m := &Model{
		width:   width,
		height:  height,
		content: buildContent(cmds, DefaultKeys),
	}
	m.layout()
	return m
}

func buildContent(cmds []CommandInfo, keys []KeyInfo) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Commands"))
	b.WriteString("\n\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "  :%-12s %s\n", c.Name, c.Description)
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %-20s %s\n", k.Key, k.Desc)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return ViewName }

func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "j/k", Desc: "scroll"},
		{Key: "esc", Desc: "back"},
	}
}
