// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package library

import (
	"time"

	"github.com/google/uuid"
)

// Metadata is the optional book.toml sidecar inside a book directory.
type Metadata struct {
	Title  string `toml:"title"`
	Author string `toml:"author"`
	Year   int    `toml:"year"`
}

// Book is one shelf entry: a directory of ordered page files.
type Book struct {
	// ID is deterministic over the slug, so reading positions survive
	// rescans and library moves.
	ID     uuid.UUID
	Slug   string
	Title  string
	Author string
	Year   int

	// Path is the absolute book directory.
	Path string
	// Pages holds the page file names in reading order.
	Pages []string
	// Words is the whole-book word count.
	Words int
}

// PageCount is the number of pages; page numbers run 1..PageCount.
func (b Book) PageCount() int { return len(b.Pages) }

// BookID derives the deterministic identifier for a book slug.
func BookID(slug string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("folio:book:"+slug))
}

// Shelf is one scan result over the library root.
type Shelf struct {
	Root      string
	Books     []Book
	ScannedAt time.Time
}

// Get finds a book by ID.
func (s *Shelf) Get(id uuid.UUID) (Book, bool) {
	if s == nil {
		return Book{}, false
	}
	for _, b := range s.Books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// BySlug finds a book by its directory name.
func (s *Shelf) BySlug(slug string) (Book, bool) {
	if s == nil {
		return Book{}, false
	}
	for _, b := range s.Books {
		if b.Slug == slug {
			return b, true
		}
	}
	return Book{}, false
}

// TotalWords sums the word counts across the shelf.
func (s *Shelf) TotalWords() int {
	if s == nil {
		return 0
	}
	total := 0
	for _, b := range s.Books {
		total += b.Words
	}
	return total
}
