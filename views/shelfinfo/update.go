// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shelfinfoview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"folio/ui"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Grouped digits read better once shelves reach novel-length word counts.
	numPrinter = message.NewPrinter(language.English)
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Msg:
		m.loading = false
		m.firstLoad = false
		m.err = msg.Err
		if msg.Err == nil {
			m.books = msg.Books
			m.words = msg.Words
			m.positions = msg.Positions
		} else {
			l().Warnf("refreshing shelf stats: %v", msg.Err)
		}
		m.buildContent()
		return m, nil

	case TickMsg:
		m.loading = true
		return m, tea.Batch(LoadStatus(m.libraryPath, m.st), tickCmd())

	case SpinnerTickMsg:
		if !m.firstLoad {
			return m, nil
		}
		m.spinner++
		m.buildContent()
		return m, spinnerTickCmd()
	}
	return m, nil
}

func (m *Model) buildContent() {
	if m.firstLoad {
		m.content = fmt.Sprintf("%s scanning shelf...", ui.SpinnerCharAt(m.spinner))
		return
	}

	var b strings.Builder
	writeRow(&b, "Library:", m.libraryPath)
	writeRow(&b, "Version:", m.version)
	writeRow(&b, "Books:", numPrinter.Sprintf("%d", m.books))
	writeRow(&b, "Words:", numPrinter.Sprintf("%d", m.words))
	writeRow(&b, "Reading:", numPrinter.Sprintf("%d", m.positions))
	if m.err != nil {
		b.WriteString(dimStyle.Render("shelf scan failed, showing last counts"))
	}
	m.content = strings.TrimRight(b.String(), "\n")
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label)), value))
}
