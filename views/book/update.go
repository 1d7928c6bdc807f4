package bookview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"folio/nav"
	"folio/views/confirmdialog"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case ResolvedMsg:
		if msg.Err != nil {
			l().Errorf("resolving %q: %v", m.query, msg.Err)
			m.err = msg.Err
			return nil
		}
		return m.adopt(msg.Book)

	case PositionMsg:
		if !msg.OK || !m.resolved {
			return nil
		}
		page := m.clampPage(msg.Position.Page)
		if cur, ok := m.flow.CurrentRoute(); ok && cur.Page == page {
			return nil
		}
		l().Infof("resuming %q at page %d", m.book.Slug, page)
		return m.flow.Replace(nav.Page(page), nil)

	case nav.NavigateToMsg:
		return m.handleNavigate(msg)

	case nav.TransitionTickMsg:
		if m.flow == nil {
			return nil
		}
		cmd, _ := m.flow.Update(msg)
		return cmd

	case confirmdialog.ResultMsg:
		if msg.Confirmed {
			return m.deps.RootNav.Back()
		}
		return nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.confirm.Width = msg.Width
		m.confirm.Height = msg.Height
		if m.flow != nil {
			return m.flow.Resize(msg.Width, msg.Height)
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

// handleNavigate clamps page targets to the book before the inner flow
// sees them, and records the new position as a side effect.
func (m *Model) handleNavigate(msg nav.NavigateToMsg) tea.Cmd {
	if msg.Flow != nav.FlowBook || m.flow == nil {
		return nil
	}
	if msg.Route.Kind != nav.KindPage || !m.resolved {
		return nil
	}

	page := m.clampPage(msg.Route.Page)
	if page != msg.Route.Page {
		l().Debugf("page %d out of range, clamped to %d", msg.Route.Page, page)
		m.deps.Haptics.Buzz()
	}
	if cur, ok := m.flow.CurrentRoute(); ok && cur.Page == page {
		return nil
	}

	msg.Route = nav.Page(page)
	cmd, _ := m.flow.Update(msg)
	return tea.Batch(cmd, savePositionCmd(m.deps.Store, m.book, page))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Visible {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return cmd
	}

	if m.err != nil {
		switch msg.String() {
		case "enter", "esc":
			return m.deps.RootNav.Back()
		}
		return nil
	}

	if m.flow == nil {
		return nil
	}

	// A page capturing keys for a dialog or search gets everything raw.
	if m.HasActiveDialog() {
		return m.forward(msg)
	}

	switch msg.String() {
	case "esc", "q":
		m.confirm.Visible = true
		m.confirm.Message = fmt.Sprintf("Close %q?", m.book.Title)
		return nil
	}
	return m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if m.flow == nil {
		return nil
	}
	if cur := m.flow.Current(); cur != nil {
		return cur.Update(msg)
	}
	return nil
}
