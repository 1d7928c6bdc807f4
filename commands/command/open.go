// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"strings"

	"folio/args"
	"folio/commands/api"
	"folio/commands/internal/registry"
	"folio/nav"

	tea "github.com/charmbracelet/bubbletea"
)

type Open struct{}

func (Open) Name() string        { return "open" }
func (Open) Description() string { return "Open a book by title (typo-tolerant)" }

// Execute pushes the book destination with the raw query as payload; the
// book screen resolves it against the shelf and surfaces no-match errors
// itself.
func (Open) Execute(ctx api.Context, a args.Args) tea.Cmd {
	query := strings.Join(a.Positionals, " ")
	return func() tea.Msg {
		return nav.NavigateToMsg{Flow: nav.FlowRoot, Route: nav.Book(), Payload: query}
	}
}

func init() {
	registry.Register(Open{})
	registry.Register(aliasCommand{name: "o", target: Open{}})
}
