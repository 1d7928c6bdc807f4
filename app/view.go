// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"github.com/charmbracelet/lipgloss"

	"folio/ui"
	"folio/views/helpbar"
	"folio/views/view"
)

func (m *Model) View() string {
	cur := m.flow.Current()
	if cur == nil {
		return ""
	}

	w, _ := m.usableSize()

	globalHelp := []helpbar.HelpEntry{
		{Key: "?", Desc: "Help"},
		{Key: ":", Desc: "Command"},
	}
	if cur.Name() == view.NameHelp {
		globalHelp = nil
	}

	help := helpbar.New(w).
		WithGlobalHelp(globalHelp).
		WithViewHelp(cur.ShortHelpItems()).
		View(m.shelfInfo.View())

	if m.commandInput.Visible() {
		cmdFrame := ui.RenderFramedBoxHeight("", "", m.commandInput.View(), "", w+4, 3)
		return lipgloss.JoinVertical(
			lipgloss.Left,
			help,
			cmdFrame,
			m.flow.View(),
			m.renderStackBar(),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		help,
		m.flow.View(),
		m.renderStackBar(),
	)
}
