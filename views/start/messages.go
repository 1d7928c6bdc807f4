package startview

import (
	"folio/library"
	"folio/store"
)

// ShelfMsg delivers a scanned shelf, or the scan failure.
type ShelfMsg struct {
	Books []library.Book
	Err   error
}

// RecentsMsg delivers the stored reading positions for the LAST READ column.
type RecentsMsg struct {
	Positions []store.Position
	Err       error
}
