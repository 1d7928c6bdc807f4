package commandinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the ':' command bar. The app overlays it above the active
// screen; while visible it captures all key input.
type Model struct {
	input   textinput.Model
	visible bool

	history []string
	histPos int

	suggest     func(prefix string) []string
	suggestions []string
	selected    int

	errorMsg string
}

// New creates the command bar. suggest maps the current input prefix to
// completion candidates; nil disables completion.
func New(suggest func(prefix string) []string) Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.CharLimit = 256
	ti.Focus() // ensures cursor state initialized properly

	return Model{
		input:   ti,
		suggest: suggest,
	}
}

// Visible returns true if the command bar is capturing input.
func (m Model) Visible() bool { return m.visible }

// Show makes the command bar visible and focuses the input.
func (m *Model) Show() tea.Cmd {
	m.visible = true
	m.errorMsg = ""
	m.input.Focus()
	m.refreshSuggestions()
	return textinput.Blink
}

// Hide hides the command bar and clears its state.
func (m *Model) Hide() tea.Cmd {
	m.visible = false
	m.errorMsg = ""
	m.suggestions = nil
	m.selected = 0
	m.input.Blur()
	m.input.Reset()
	return nil
}

// ShowError re-opens the bar with an error line under the prompt.
func (m *Model) ShowError(msg string) tea.Cmd {
	m.errorMsg = msg
	m.visible = true
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) refreshSuggestions() {
	m.selected = 0
	if m.suggest == nil {
		m.suggestions = nil
		return
	}
	prefix := strings.TrimSpace(m.input.Value())
	m.suggestions = m.suggest(prefix)
}
