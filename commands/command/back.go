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

type Back struct{}

func (Back) Name() string        { return "back" }
func (Back) Description() string { return "Go back one screen" }

// Execute pops the root stack directly, without the leave confirmation
// esc shows over an open book. The book's exit hook still records the
// reading position on the way out.
func (Back) Execute(ctx api.Context, a args.Args) tea.Cmd {
	return func() tea.Msg {
		return nav.NavigateBackMsg{Flow: nav.FlowRoot}
	}
}

func init() {
	registry.Register(Back{})
	registry.Register(aliasCommand{name: "b", target: Back{}})
}
