package command

import (
	"folio/args"
	"folio/commands/api"
	"folio/commands/internal/registry"
	"folio/nav"

	tea "github.com/charmbracelet/bubbletea"
)

type Help struct{}

func (Help) Name() string        { return "help" }
func (Help) Description() string { return "Show all available commands" }

func (Help) Execute(ctx api.Context, a args.Args) tea.Cmd {
	return func() tea.Msg {
		return nav.NavigateToMsg{Flow: nav.FlowRoot, Route: nav.Help()}
	}
}

func init() {
	registry.Register(Help{})
}
