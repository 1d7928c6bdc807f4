package api

import (
	"folio/args"

	tea "github.com/charmbracelet/bubbletea"
)

// Context is handed to every command execution. App carries the host
// model for commands that need more than navigation; most ignore it.
type Context struct {
	App any // e.g. *app.Model
}

// Command is one ':' prompt verb. Implementations self-register in their
// package init, pulled in by the commands autoload imports.
type Command interface {
	Name() string
	Description() string
	Execute(ctx Context, a args.Args) tea.Cmd
}
