// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	foliolog "folio/utils/log"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func l() *foliolog.FolioLogger {
	return foliolog.L().With("component", "library")
}

var titleCaser = cases.Title(language.English)

// Scan walks the library root and builds a shelf. Each immediate
// subdirectory with at least one page file becomes a book; directories
// that fail to read are logged and skipped, they never fail the scan.
func Scan(root string) (*Shelf, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read library root %s: %w", root, err)
	}

	var books []Book
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		b, err := readBook(filepath.Join(root, e.Name()), e.Name())
		if err != nil {
			l().Warnf("skipping %s: %v", e.Name(), err)
			continue
		}
		if b.PageCount() == 0 {
			continue
		}
		books = append(books, b)
	}

	sort.Slice(books, func(i, j int) bool {
		return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
	})

	return &Shelf{Root: root, Books: books, ScannedAt: Now()}, nil
}

func readBook(dir, slug string) (Book, error) {
	b := Book{
		ID:    BookID(slug),
		Slug:  slug,
		Title: titleize(slug),
		Path:  dir,
	}

	metaPath := filepath.Join(dir, "book.toml")
	if _, err := os.Stat(metaPath); err == nil {
		var meta Metadata
		if _, err := toml.DecodeFile(metaPath, &meta); err != nil {
			return Book{}, fmt.Errorf("decode book.toml: %w", err)
		}
		if meta.Title != "" {
			b.Title = meta.Title
		}
		b.Author = meta.Author
		b.Year = meta.Year
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Book{}, fmt.Errorf("read book dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !isPageFile(e.Name()) {
			continue
		}
		b.Pages = append(b.Pages, e.Name())
	}
	sort.Strings(b.Pages)

	for _, page := range b.Pages {
		data, err := os.ReadFile(filepath.Join(dir, page))
		if err != nil {
			return Book{}, fmt.Errorf("read page %s: %w", page, err)
		}
		b.Words += len(strings.Fields(string(data)))
	}

	return b, nil
}

func isPageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".txt":
		return true
	}
	return false
}

// titleize turns a directory slug into a display title when book.toml
// provides none.
func titleize(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return titleCaser.String(s)
}
