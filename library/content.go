// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Content loads page text on demand and memoizes it. Page screens are
// created and torn down on every turn, so the cache lives above them,
// owned by the book screen.
type Content struct {
	mu    sync.Mutex
	pages map[pageKey]string
}

type pageKey struct {
	book uuid.UUID
	page int
}

func NewContent() *Content {
	return &Content{pages: map[pageKey]string{}}
}

// Page returns the text of page n (1-based). Out-of-range requests are
// errors here; the screens are expected to stay within PageCount.
func (c *Content) Page(b Book, n int) (string, error) {
	if n < 1 || n > b.PageCount() {
		return "", fmt.Errorf("page %d out of range for %q (have %d)", n, b.Title, b.PageCount())
	}

	key := pageKey{book: b.ID, page: n}
	c.mu.Lock()
	if text, ok := c.pages[key]; ok {
		c.mu.Unlock()
		return text, nil
	}
	c.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(b.Path, b.Pages[n-1]))
	if err != nil {
		return "", fmt.Errorf("read page %d of %q: %w", n, b.Title, err)
	}
	text := string(data)

	c.mu.Lock()
	c.pages[key] = text
	c.mu.Unlock()
	return text, nil
}

// Forget drops the cached pages of one book, e.g. after a rescan showed
// its files changed.
func (c *Content) Forget(book uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.pages {
		if key.book == book {
			delete(c.pages, key)
		}
	}
}
