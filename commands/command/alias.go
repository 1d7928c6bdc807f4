// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"folio/args"
	"folio/commands/api"

	tea "github.com/charmbracelet/bubbletea"
)

// aliasCommand lets a verb answer to a short name; :b, :g and :o are
// registered through it.
type aliasCommand struct {
	name   string
	target api.Command
}

func (a aliasCommand) Name() string        { return a.name }
func (a aliasCommand) Description() string { return a.target.Description() }
func (a aliasCommand) Execute(ctx api.Context, in args.Args) tea.Cmd {
	return a.target.Execute(ctx, in)
}
