// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package nav

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Flow names. The root flow hosts start/credits/book; the book flow hosts
// the page destinations. Messages are tagged with the flow they belong to
// so the nested flow inside the book screen can tell its traffic apart
// from the root's.
const (
	FlowRoot = "root"
	FlowBook = "book"
)

type NavigateToMsg struct {
	Flow  string
	Route Route
	// Payload carries collaborator data the destination needs beyond the
	// route itself (e.g. which book to open).
	Payload any
	// Replace indicates whether the target should replace the active
	// destination (pop-then-push) instead of being pushed on top of it.
	Replace bool
}

type NavigateBackMsg struct {
	Flow string
}

// TransitionTickMsg drives transition animation frames for one flow.
type TransitionTickMsg struct {
	Flow string
	At   time.Time
}

// Navigator is the explicit navigation capability handed to screens.
// Screens never reach for an ambient controller; they hold one of these.
type Navigator interface {
	NavigateTo(r Route, payload any) tea.Cmd
	Replace(r Route, payload any) tea.Cmd
	Back() tea.Cmd
}

// NavigatorFor returns a Navigator whose commands address the named flow.
func NavigatorFor(flow string) Navigator {
	return msgNavigator{flow: flow}
}

type msgNavigator struct {
	flow string
}

func (n msgNavigator) NavigateTo(r Route, payload any) tea.Cmd {
	return func() tea.Msg {
		return NavigateToMsg{Flow: n.flow, Route: r, Payload: payload}
	}
}

func (n msgNavigator) Replace(r Route, payload any) tea.Cmd {
	return func() tea.Msg {
		return NavigateToMsg{Flow: n.flow, Route: r, Payload: payload, Replace: true}
	}
}

func (n msgNavigator) Back() tea.Cmd {
	return func() tea.Msg {
		return NavigateBackMsg{Flow: n.flow}
	}
}
