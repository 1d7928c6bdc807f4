package pageview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/haptics"
	"folio/library"
	"folio/nav"
	"folio/views/gotodialog"
	"folio/views/helpbar"
)

// Params is everything a page screen is handed by its factory: the book,
// the resolved page number, and the capabilities it is allowed to use.
// RootNav lets the page leave the whole book flow; BookNav turns pages.
type Params struct {
	Book    library.Book
	Page    int
	Total   int
	RootNav nav.Navigator
	BookNav nav.Navigator
	Haptics haptics.Feedback
	Content *library.Content
}

type Model struct {
	params Params

	width  int
	height int

	viewport viewport.Model
	text     string
	ready    bool
	err      error

	gotoDialog *gotodialog.Model

	searching  bool
	searchTerm string

	toast         string
	toastDeadline time.Time
}

func New(width, height int, p Params) *Model {
	vp := viewport.New(width, height)
	return &Model{
		params:     p,
		width:      width,
		height:     height,
		viewport:   vp,
		gotoDialog: gotodialog.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return loadContentCmd(m.params.Content, m.params.Book, m.params.Page)
}

func (m *Model) Name() string { return ViewName }

// Busy reports whether the page text is still being read. The book flow
// swaps a busy page without animating it.
func (m *Model) Busy() bool { return !m.ready && m.err == nil }

// HasActiveDialog reports whether this screen is capturing keys for a
// dialog or the search prompt.
func (m *Model) HasActiveDialog() bool {
	return m.gotoDialog.Visible || m.searching
}

func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "→/space", Desc: "next page"},
		{Key: "←/p", Desc: "previous page"},
		{Key: "g", Desc: "go to page"},
		{Key: "/", Desc: "search in page"},
		{Key: "j/k", Desc: "scroll"},
		{Key: "x", Desc: "close book"},
	}
}

func loadContentCmd(content *library.Content, b library.Book, page int) tea.Cmd {
	return func() tea.Msg {
		text, err := content.Page(b, page)
		if err != nil {
			return ContentMsg{Page: page, Err: err}
		}
		return ContentMsg{Page: page, Text: text}
	}
}

func (m *Model) setToast(msg string) tea.Cmd {
	m.toast = msg
	m.toastDeadline = time.Now().Add(toastTTL)
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (m *Model) pageLabel() string {
	return fmt.Sprintf("Page %d of %d", m.params.Page, m.params.Total)
}
