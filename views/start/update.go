package startview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"folio/library"
	"folio/nav"
	"folio/store"
	filterlist "folio/ui/components/filterable/list"
	"folio/ui/components/sorting"
	"folio/views/polling"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case ShelfMsg:
		if msg.Err != nil {
			l().Errorf("shelf scan failed: %v", msg.Err)
			if m.state == stateLoading {
				m.state = stateError
				m.err = msg.Err
				m.loading.SetVisible(false)
			}
			// An established shelf stays on screen through a failed rescan.
			return m.poller.TickCmd()
		}
		m.setBooks(msg.Books)
		m.poller.UpdateHash(msg.Books)
		return m.poller.TickCmd()

	case RecentsMsg:
		if msg.Err != nil {
			l().Warnf("loading positions: %v", msg.Err)
			return nil
		}
		m.recents = make(map[uuid.UUID]store.Position, len(msg.Positions))
		for _, p := range msg.Positions {
			m.recents[p.BookID] = p
		}
		return nil

	case polling.TickMsg:
		return m.poller.CheckCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.List.Viewport.Width = msg.Width
		m.List.Viewport.Height = msg.Height
		return m.loading.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == stateLoading {
		return m.loading.Update(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.state {
	case stateLoading:
		return nil

	case stateError:
		if msg.String() == "r" || msg.Type == tea.KeyEnter {
			m.state = stateLoading
			m.err = nil
			m.loading.SetVisible(true)
			return tea.Batch(loadShelfCmd(m.libraryRoot), m.loading.Init())
		}
		return nil
	}

	if m.List.Mode == filterlist.ModeSearching {
		m.List.HandleKey(msg)
		return nil
	}

	m.List.HandleKey(msg)

	switch msg.String() {
	case "enter":
		book, ok := m.List.Selected()
		if !ok {
			return nil
		}
		l().Infof("opening %q", book.Slug)
		return m.nav.NavigateTo(nav.Book(), book)

	case "s":
		m.sortField = (m.sortField + 1) % 4
		m.applySort()

	case "o":
		m.sortAsc = !m.sortAsc
		m.applySort()

	case "r":
		l().Debugf("manual rescan requested")
		return rescanCmd(m.libraryRoot)

	case "c":
		book, ok := m.List.Selected()
		if !ok {
			return nil
		}
		if _, read := m.lastRead(book.ID); !read {
			return nil
		}
		l().Infof("clearing progress for %q", book.Slug)
		return clearPositionCmd(m.st, book)
	}
	return nil
}

// setBooks installs a scanned shelf, preserving filter and sort. Books
// whose files changed since the previous scan lose their cached pages.
func (m *Model) setBooks(books []library.Book) {
	m.invalidateChanged(books)
	m.state = stateReady
	m.err = nil
	m.loading.SetVisible(false)
	m.List.SetItems(books)
	m.applySort()
}

func (m *Model) invalidateChanged(books []library.Book) {
	if m.content == nil || len(m.List.Items) == 0 {
		return
	}
	prev := make(map[uuid.UUID]library.Book, len(m.List.Items))
	for _, b := range m.List.Items {
		prev[b.ID] = b
	}
	for _, b := range books {
		if old, ok := prev[b.ID]; ok && bookChanged(old, b) {
			l().Debugf("pages of %q changed on disk, dropping cached text", b.Slug)
			m.content.Forget(b.ID)
		}
	}
}

func bookChanged(old, cur library.Book) bool {
	if old.Words != cur.Words || len(old.Pages) != len(cur.Pages) {
		return true
	}
	for i := range cur.Pages {
		if old.Pages[i] != cur.Pages[i] {
			return true
		}
	}
	return false
}

func (m *Model) applySort() {
	asc := m.sortAsc
	switch m.sortField {
	case sortAuthor:
		sorting.SortStringField(m.List.Items, asc, func(b library.Book) string { return b.Author })
	case sortYear:
		sorting.SortIntField(m.List.Items, asc, func(b library.Book) int { return b.Year })
	case sortPages:
		sorting.SortIntField(m.List.Items, asc, func(b library.Book) int { return b.PageCount() })
	default:
		sorting.SortStringField(m.List.Items, asc, func(b library.Book) string { return b.Title })
	}
	m.List.ApplyFilter()
}

func rescanCmd(root string) tea.Cmd {
	return func() tea.Msg {
		shelf, _, err := library.RefreshShelf(root)
		if err != nil {
			return ShelfMsg{Err: err}
		}
		return ShelfMsg{Books: shelf.Books}
	}
}
