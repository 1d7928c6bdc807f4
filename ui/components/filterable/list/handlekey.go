package filterlist

import tea "github.com/charmbracelet/bubbletea"

// HandleKey drives both modes. While searching, keys edit the query;
// otherwise they move the cursor. '/' switches in, enter keeps the filter
// and hands the keyboard back, esc drops the filter entirely.
func (f *FilterableList[T]) HandleKey(msg tea.KeyMsg) {
	if f.Mode == ModeSearching {
		f.handleSearchKey(msg)
		return
	}

	switch msg.String() {
	case "up", "k":
		f.moveCursor(-1)
	case "down", "j":
		f.moveCursor(1)
	case "pgup", "u":
		f.moveCursor(-f.pageSize())
	case "pgdown", "d":
		f.moveCursor(f.pageSize())
	case "/":
		f.Mode = ModeSearching
		f.Query = ""
		f.Cursor = 0
		f.Filtered = f.Items
		f.Viewport.GotoTop()
	}
}

func (f *FilterableList[T]) handleSearchKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		f.Query += string(msg.Runes)
		f.ApplyFilter()
	case tea.KeyBackspace:
		if f.Query != "" {
			f.Query = f.Query[:len(f.Query)-1]
		}
		f.ApplyFilter()
	case tea.KeyEnter:
		// Keep the filter, hand keys back to the screen.
		f.Mode = ModeNormal
	case tea.KeyEsc:
		f.Mode = ModeNormal
		f.Query = ""
		f.Filtered = f.Items
		f.Cursor = 0
		f.Viewport.GotoTop()
	}
}

// moveCursor shifts the cursor by delta rows, clamped to the filtered
// rows, and scrolls it into view.
func (f *FilterableList[T]) moveCursor(delta int) {
	f.Cursor += delta
	if f.Cursor >= len(f.Filtered) {
		f.Cursor = len(f.Filtered) - 1
	}
	if f.Cursor < 0 {
		f.Cursor = 0
	}
	f.ensureCursorVisible()
}

func (f *FilterableList[T]) pageSize() int {
	if f.Viewport.Height < 1 {
		return 1
	}
	return f.Viewport.Height
}
