// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"strconv"

	"folio/args"
	"folio/commands/api"
	"folio/commands/internal/registry"
	"folio/nav"

	tea "github.com/charmbracelet/bubbletea"
)

type Goto struct{}

func (Goto) Name() string        { return "goto" }
func (Goto) Description() string { return "Jump to page N in the open book" }

// Execute replace-navigates the book flow, like next/previous do. A
// missing or malformed page resolves to 1, same policy as the route
// parser; the book screen clamps to its own bounds.
func (Goto) Execute(ctx api.Context, a args.Args) tea.Cmd {
	page := 1
	if len(a.Positionals) > 0 {
		if n, err := strconv.Atoi(a.Positionals[0]); err == nil {
			page = n
		}
	}
	return func() tea.Msg {
		return nav.NavigateToMsg{Flow: nav.FlowBook, Route: nav.Page(page), Replace: true}
	}
}

func init() {
	registry.Register(Goto{})
	registry.Register(aliasCommand{name: "g", target: Goto{}})
}
