// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shelfinfoview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/library"
	"folio/store"
)

// Model is the status block rendered beside the help bar. It keeps a
// pre-rendered content string so View stays allocation free.
type Model struct {
	content string

	version     string
	libraryPath string
	st          *store.Store

	books     int
	words     int
	positions int

	loading   bool
	firstLoad bool
	spinner   int
	err       error
}

func New(version, libraryPath string, st *store.Store) Model {
	m := Model{
		version:     version,
		libraryPath: libraryPath,
		st:          st,
		loading:     true,
		firstLoad:   true,
	}
	m.buildContent()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(spinnerTickCmd(), tickCmd())
}

// LoadStatus scans the shelf snapshot and counts stored reading
// positions. Both sources are cheap enough to query together.
func LoadStatus(root string, st *store.Store) tea.Cmd {
	return func() tea.Msg {
		shelf, err := library.ShelfSnapshot(root)
		if err != nil {
			return Msg{Err: err}
		}
		msg := Msg{
			Books: len(shelf.Books),
			Words: shelf.TotalWords(),
		}
		if st != nil {
			n, err := st.CountPositions()
			if err != nil {
				l().Warnf("counting positions: %v", err)
			} else {
				msg.Positions = n
			}
		}
		return msg
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(statusInterval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}
