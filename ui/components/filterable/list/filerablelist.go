package filterlist

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// FilterableList is a cursor-driven list with incremental filtering,
// generic over the row type. The embedded viewport only tracks scroll
// state; rendering goes through RenderItem.
type FilterableList[T any] struct {
	Viewport viewport.Model

	Items    []T
	Filtered []T
	Cursor   int
	Query    string
	Mode     ModeType

	// RenderItem renders a single row.
	RenderItem func(item T, selected bool) string

	// Rank maps the full item set to the matching rows in display order,
	// so relevance ordering lives with the caller. Nil disables filtering.
	Rank func(items []T, query string) []T
}

type ModeType int

const (
	ModeNormal ModeType = iota
	ModeSearching
)

// SetItems replaces the backing items and re-applies the current filter.
func (f *FilterableList[T]) SetItems(items []T) {
	f.Items = items
	f.ApplyFilter()
}

// Selected returns the item under the cursor.
func (f *FilterableList[T]) Selected() (T, bool) {
	var zero T
	if f.Cursor < 0 || f.Cursor >= len(f.Filtered) {
		return zero, false
	}
	return f.Filtered[f.Cursor], true
}

// Searching reports whether the list is capturing keys for its query.
func (f *FilterableList[T]) Searching() bool {
	return f.Mode == ModeSearching
}
