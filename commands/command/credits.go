// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"folio/args"
	"folio/commands/api"
	"folio/commands/internal/registry"
	"folio/nav"

	tea "github.com/charmbracelet/bubbletea"
)

type Credits struct{}

func (Credits) Name() string        { return "credits" }
func (Credits) Description() string { return "Show the credits screen" }

func (Credits) Execute(ctx api.Context, a args.Args) tea.Cmd {
	return func() tea.Msg {
		return nav.NavigateToMsg{Flow: nav.FlowRoot, Route: nav.Credits()}
	}
}

func init() {
	registry.Register(Credits{})
}
