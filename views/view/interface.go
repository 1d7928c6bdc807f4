package view

import (
	"folio/views/helpbar"

	tea "github.com/charmbracelet/bubbletea"
)

// View is a screen hosted by a navigation flow.
type View interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	Init() tea.Cmd
	Name() string

	// OnEnter runs when the view becomes the active destination,
	// OnExit when it stops being active (covered, replaced or popped).
	OnEnter() tea.Cmd
	OnExit() tea.Cmd

	ShortHelpItems() []helpbar.HelpEntry
}
