// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"folio/args"
	"folio/commands/api"
	"folio/commands/internal/registry"

	tea "github.com/charmbracelet/bubbletea"
)

type Quit struct{}

func (Quit) Name() string        { return "quit" }
func (Quit) Description() string { return "Quit folio" }

// Execute goes through the host's quit when one is wired, so an open
// book runs its exit hook before the program stops.
func (Quit) Execute(ctx api.Context, a args.Args) tea.Cmd {
	if host, ok := ctx.App.(interface{ Quit() tea.Cmd }); ok {
		return host.Quit()
	}
	return tea.Quit
}

func init() {
	registry.Register(Quit{})
	registry.Register(aliasCommand{name: "exit", target: Quit{}})
}
