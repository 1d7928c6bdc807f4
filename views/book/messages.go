package bookview

import (
	"folio/library"
	"folio/store"
)

// ResolvedMsg reports the shelf lookup for a book opened by query.
type ResolvedMsg struct {
	Book library.Book
	Err  error
}

// PositionMsg delivers the stored reading position, if any.
type PositionMsg struct {
	Position store.Position
	OK       bool
}
