package bookview

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/haptics"
	"folio/library"
	"folio/nav"
	"folio/store"
	"folio/views/confirmdialog"
	"folio/views/helpbar"
	pageview "folio/views/page"
	"folio/views/view"
)

// Deps is what the app's factory closure hands every book container.
type Deps struct {
	LibraryRoot string
	Store       *store.Store
	Haptics     haptics.Feedback
	Content     *library.Content
	RootNav     nav.Navigator

	// Transitions configure the inner page flow; the root flow's fade is
	// the app's business.
	Transitions   nav.TransitionKind
	TransitionDur time.Duration
}

// Model hosts the inner page flow. The container owns what pages cannot
// decide alone: resolving the book, clamping page targets to the book's
// real extent, persisting the reading position, and the leave confirmation.
type Model struct {
	deps Deps

	width  int
	height int

	book     library.Book
	resolved bool
	query    string
	err      error

	flow    *nav.Flow
	bookNav nav.Navigator

	confirm confirmdialog.Model
}

// New builds the container. payload is either a library.Book (picked on the
// shelf) or a raw query string (the `open` command), resolved asynchronously.
func New(width, height int, d Deps, payload any) (*Model, tea.Cmd) {
	m := &Model{
		deps:    d,
		width:   width,
		height:  height,
		bookNav: nav.NavigatorFor(nav.FlowBook),
		confirm: confirmdialog.New(width, height),
	}

	switch p := payload.(type) {
	case library.Book:
		return m, m.adopt(p)
	case string:
		m.query = p
		return m, resolveCmd(d.LibraryRoot, p)
	default:
		m.err = fmt.Errorf("nothing to open")
		return m, nil
	}
}

// adopt installs the resolved book and mounts the page flow at page 1;
// the stored position, when one exists, replaces it in a moment without
// growing the stack.
func (m *Model) adopt(b library.Book) tea.Cmd {
	m.book = b
	m.resolved = true
	m.err = nil

	m.flow = nav.NewFlow(nav.FlowBook, m.width, m.height)
	m.flow.SetTransitions(m.deps.Transitions, m.deps.TransitionDur)
	m.flow.Register(nav.KindPage, m.pageFactory)

	mountCmd := m.flow.Mount(nav.Page(1), nil)
	l().Infof("opened %q (%d pages)", b.Slug, b.PageCount())
	return tea.Batch(mountCmd, loadPositionCmd(m.deps.Store, b))
}

func (m *Model) pageFactory(width, height int, r nav.Route, _ any) (view.View, tea.Cmd) {
	page := pageview.New(width, height, pageview.Params{
		Book:    m.book,
		Page:    r.Page,
		Total:   m.book.PageCount(),
		RootNav: m.deps.RootNav,
		BookNav: m.bookNav,
		Haptics: m.deps.Haptics,
		Content: m.deps.Content,
	})
	return page, page.Init()
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return ViewName }

// Busy reports whether the container is still resolving which book to show.
func (m *Model) Busy() bool { return !m.resolved && m.err == nil }

// HandlesBack tells the app to hand esc/q to this screen instead of
// popping it; leaving a book goes through the confirmation first.
func (m *Model) HandlesBack() bool { return true }

// HasActiveDialog covers both the container's own confirmation and
// whatever dialog the active page has open.
func (m *Model) HasActiveDialog() bool {
	if m.confirm.Visible {
		return true
	}
	if m.flow == nil {
		return false
	}
	if v, ok := m.flow.Current().(interface{ HasActiveDialog() bool }); ok {
		return v.HasActiveDialog()
	}
	return false
}

// Breadcrumbs labels this container for the stack bar: the book title plus
// the active page.
func (m *Model) Breadcrumbs() []string {
	if !m.resolved {
		return []string{"book"}
	}
	crumbs := []string{m.book.Title}
	if r, ok := m.flow.CurrentRoute(); ok {
		crumbs = append(crumbs, r.Label())
	}
	return crumbs
}

func (m *Model) OnEnter() tea.Cmd { return nil }

// OnExit persists where the reader stopped.
func (m *Model) OnExit() tea.Cmd {
	if !m.resolved || m.flow == nil {
		return nil
	}
	if r, ok := m.flow.CurrentRoute(); ok {
		return savePositionCmd(m.deps.Store, m.book, r.Page)
	}
	return nil
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	if m.resolved && m.flow != nil {
		if cur := m.flow.Current(); cur != nil {
			return append(cur.ShortHelpItems(), helpbar.HelpEntry{Key: "esc", Desc: "close book"})
		}
	}
	return []helpbar.HelpEntry{{Key: "esc", Desc: "back"}}
}

func resolveCmd(root, query string) tea.Cmd {
	return func() tea.Msg {
		shelf, err := library.ShelfSnapshot(root)
		if err != nil {
			return ResolvedMsg{Err: err}
		}
		b, ok := library.MatchBook(shelf.Books, query)
		if !ok {
			return ResolvedMsg{Err: fmt.Errorf("no book on the shelf matches %q", query)}
		}
		return ResolvedMsg{Book: b}
	}
}

func loadPositionCmd(st *store.Store, b library.Book) tea.Cmd {
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok, err := st.PositionFor(b.ID)
		if err != nil {
			l().Warnf("loading position for %q: %v", b.Slug, err)
			return PositionMsg{}
		}
		return PositionMsg{Position: p, OK: ok}
	}
}

func savePositionCmd(st *store.Store, b library.Book, page int) tea.Cmd {
	if st == nil || page < 1 {
		return nil
	}
	return func() tea.Msg {
		err := st.SavePosition(store.Position{
			BookID: b.ID,
			Slug:   b.Slug,
			Title:  b.Title,
			Page:   page,
		})
		if err != nil {
			l().Warnf("saving position for %q: %v", b.Slug, err)
		}
		return nil
	}
}

// clampPage keeps a requested page inside the book. The navigation layer
// itself never applies a floor; bounds live here, next to the content.
func (m *Model) clampPage(n int) int {
	if total := m.book.PageCount(); total > 0 && n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	return n
}
