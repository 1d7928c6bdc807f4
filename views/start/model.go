package startview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"folio/library"
	"folio/nav"
	"folio/store"
	filterlist "folio/ui/components/filterable/list"
	"folio/ui/components/sorting"
	"folio/views/helpbar"
	loadingview "folio/views/loading"
	"folio/views/polling"
)

type state int

const (
	stateLoading state = iota
	stateReady
	stateError
)

type sortField int

const (
	sortTitle sortField = iota
	sortAuthor
	sortYear
	sortPages
)

func (f sortField) String() string {
	switch f {
	case sortAuthor:
		return "author"
	case sortYear:
		return "year"
	case sortPages:
		return "pages"
	}
	return "title"
}

// Model is the shelf screen: every book found under the library root,
// filterable and sortable, with the stored reading position alongside.
type Model struct {
	List filterlist.FilterableList[library.Book]

	nav nav.Navigator
	st  *store.Store

	width  int
	height int

	state state
	err   error

	libraryRoot string
	loading     *loadingview.Model
	poller      *polling.Poller[library.Book]
	content     *library.Content

	recents map[uuid.UUID]store.Position

	// deepLink is the --open URI, displayed untouched. Parsing it is
	// someone else's job.
	deepLink string

	sortField sortField
	sortAsc   bool
}

func New(width, height int, root string, st *store.Store, content *library.Content, navigator nav.Navigator, deepLink string) *Model {
	vp := viewport.New(width, height)

	list := filterlist.FilterableList[library.Book]{
		Viewport: vp,
		Rank:     library.Rank,
	}

	m := &Model{
		List:        list,
		nav:         navigator,
		st:          st,
		width:       width,
		height:      height,
		state:       stateLoading,
		libraryRoot: root,
		loading:     loadingview.New(width, height, true, "Scanning shelf..."),
		content:     content,
		recents:     map[uuid.UUID]store.Position{},
		deepLink:    deepLink,
		sortAsc:     true,
	}
	m.poller = polling.New(
		func() ([]library.Book, error) {
			shelf, _, err := library.RefreshShelf(root)
			if err != nil {
				return nil, err
			}
			return shelf.Books, nil
		},
		func(books []library.Book) tea.Msg {
			return ShelfMsg{Books: books}
		},
	)
	m.List.RenderItem = m.renderBookRow
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(loadShelfCmd(m.libraryRoot), loadRecentsCmd(m.st), m.loading.Init())
}

func (m *Model) Name() string { return ViewName }

// Busy reports whether the shelf scan is still in flight, so the hosting
// flow knows to swap this screen without animating it.
func (m *Model) Busy() bool { return m.state == stateLoading }

func (m *Model) OnEnter() tea.Cmd {
	// Positions change while a book is open; refresh them on the way back.
	return loadRecentsCmd(m.st)
}

func (m *Model) OnExit() tea.Cmd { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "enter", Desc: "open book"},
		{Key: "↑/↓", Desc: "navigate"},
		{Key: "/", Desc: "filter"},
		{Key: "s", Desc: "sort: " + m.sortField.String()},
		{Key: "o", Desc: "order " + sorting.SortArrow(m.order())},
		{Key: "r", Desc: "rescan"},
		{Key: "c", Desc: "clear progress"},
	}
}

func (m *Model) order() sorting.SortOrder {
	if m.sortAsc {
		return sorting.Ascending
	}
	return sorting.Descending
}

// IsSearching reports whether the list is capturing keys for its query.
func (m *Model) IsSearching() bool {
	return m.List.Searching()
}

func loadShelfCmd(root string) tea.Cmd {
	return func() tea.Msg {
		shelf, err := library.ShelfSnapshot(root)
		if err != nil {
			return ShelfMsg{Err: err}
		}
		return ShelfMsg{Books: shelf.Books}
	}
}

func loadRecentsCmd(st *store.Store) tea.Cmd {
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		positions, err := st.Recent(0)
		return RecentsMsg{Positions: positions, Err: err}
	}
}

// clearPositionCmd drops the stored position of one book and reloads the
// recents so the LAST READ column updates in the same round trip.
func clearPositionCmd(st *store.Store, b library.Book) tea.Cmd {
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		if err := st.DeletePosition(b.ID); err != nil {
			l().Warnf("clearing position for %q: %v", b.Slug, err)
		}
		positions, err := st.Recent(0)
		return RecentsMsg{Positions: positions, Err: err}
	}
}

// lastRead returns the stored position for a book, if any.
func (m *Model) lastRead(id uuid.UUID) (store.Position, bool) {
	p, ok := m.recents[id]
	return p, ok
}

// continueHint names the most recently read book for the footer.
func (m *Model) continueHint() string {
	var latest store.Position
	for _, p := range m.recents {
		if p.UpdatedAt.After(latest.UpdatedAt) {
			latest = p
		}
	}
	if latest.Title == "" {
		return ""
	}
	return latest.Title
}
