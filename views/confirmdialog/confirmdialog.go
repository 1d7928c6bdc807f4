package confirmdialog

import (
	"fmt"
	"strings"

	"folio/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ResultMsg struct {
	Confirmed bool
}

// Model is a yes/no question overlaid on the parent screen. The book
// screen uses it to confirm leaving a book mid-read.
type Model struct {
	Visible bool
	Message string
	Width   int // Parent viewport width
	Height  int // Parent viewport height
}

func New(width, height int) Model {
	return Model{Width: width, Height: height}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			if m.Visible {
				return Model{Visible: false, Width: m.Width, Height: m.Height},
					func() tea.Msg { return ResultMsg{Confirmed: true} }
			}
		case "n", "N", "esc":
			if m.Visible {
				return Model{Visible: false, Width: m.Width, Height: m.Height},
					func() tea.Msg { return ResultMsg{Confirmed: false} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.Visible {
		return ""
	}

	lines := []string{
		fmt.Sprintf("⚠  %s", m.Message),
		"",
		"[y] Yes   [n] No",
	}

	contentWidth := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > contentWidth {
			contentWidth = w
		}
	}

	hPad, vPad := 2, 1
	boxWidth := contentWidth + hPad*2 + 2
	padded := make([]string, 0, len(lines)+vPad*2)

	for i := 0; i < vPad; i++ {
		padded = append(padded, "")
	}
	for _, l := range lines {
		left := strings.Repeat(" ", hPad)
		padded = append(padded, left+l)
	}
	for i := 0; i < vPad; i++ {
		padded = append(padded, "")
	}

	return ui.RenderFramedBox("Confirm", "", strings.Join(padded, "\n"), "", boxWidth)
}
