package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"folio/commands"
	"folio/commands/api"
	"folio/nav"
	"folio/views/commandinput"
	shelfinfoview "folio/views/shelfinfo"
	"folio/views/view"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		w, h := m.usableSize()
		return m, m.flow.Resize(w, h)

	case commandinput.SubmitMsg:
		return m, m.runCommand(msg.Command)

	case nav.NavigateToMsg:
		// Root-flow traffic is ours; anything else (page turns) belongs
		// to the flow inside the open book.
		if cmd, ok := m.flow.Update(msg); ok {
			return m, cmd
		}
		return m, m.delegate(msg)

	case nav.NavigateBackMsg:
		if msg.Flow == nav.FlowRoot {
			return m, m.flowBack()
		}
		return m, m.delegate(msg)

	case nav.TransitionTickMsg:
		if cmd, ok := m.flow.Update(msg); ok {
			return m, cmd
		}
		return m, m.delegate(msg)

	case shelfinfoview.Msg, shelfinfoview.TickMsg, shelfinfoview.SpinnerTickMsg:
		var cmd tea.Cmd
		m.shelfInfo, cmd = m.shelfInfo.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	default:
		return m, m.delegate(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.Quit()
	}

	// While the command bar is open it owns the keyboard.
	if m.commandInput.Visible() {
		return m.commandInput.Update(msg)
	}

	cur := m.flow.Current()
	if cur == nil {
		return nil
	}

	// A destination with an open dialog or an active search gets every
	// key verbatim, the global bindings included.
	if viewCaptures(cur) {
		return cur.Update(msg)
	}

	switch msg.String() {
	case ":":
		return m.commandInput.Show()

	case "?":
		if cur.Name() == view.NameHelp {
			return nil
		}
		return m.flow.Go(nav.Help(), nil)

	case "esc", "q":
		if handlesBack(cur) {
			return cur.Update(msg)
		}
		return m.flowBack()
	}

	return cur.Update(msg)
}

func (m *Model) runCommand(raw string) tea.Cmd {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	cmd, parsed, err := commands.ParseInput(raw)
	if err != nil {
		return m.commandInput.ShowError(err.Error())
	}

	return cmd.Execute(api.Context{App: m}, parsed)
}

func (m *Model) delegate(msg tea.Msg) tea.Cmd {
	cur := m.flow.Current()
	if cur == nil {
		return nil
	}
	return cur.Update(msg)
}

// viewCaptures reports whether the active destination is in a mode that
// must see raw keys: a modal dialog or a text search prompt.
func viewCaptures(v view.View) bool {
	if d, ok := v.(interface{ HasActiveDialog() bool }); ok && d.HasActiveDialog() {
		return true
	}
	if s, ok := v.(interface{ IsSearching() bool }); ok && s.IsSearching() {
		return true
	}
	return false
}

// handlesBack reports whether the active destination wants esc/q itself,
// e.g. the book's leave confirmation.
func handlesBack(v view.View) bool {
	if h, ok := v.(interface{ HandlesBack() bool }); ok {
		return h.HandlesBack()
	}
	return false
}
