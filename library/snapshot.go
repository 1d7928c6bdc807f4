// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package library

import (
	"sync"
	"time"

	"folio/core/primitives/hash"
)

// Shelf snapshot cache. Scans run inside Bubble Tea commands, which may
// overlap (initial load vs poll tick), so access is guarded. The structure
// hash lets callers skip UI refreshes when a rescan found nothing new.

const snapshotTTL = 15 * time.Second

var (
	snapMu      sync.RWMutex
	snapShelf   *Shelf
	snapHash    uint64
	snapTakenAt time.Time
)

// Now is the shelf clock. Truncated to seconds so scan timestamps are
// stable across quick successive calls.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// CachedShelf returns the cached shelf without touching the filesystem.
// Nil before the first successful scan.
func CachedShelf() *Shelf {
	snapMu.RLock()
	defer snapMu.RUnlock()
	return snapShelf
}

// ShelfSnapshot returns the cached shelf while it is fresh and matches the
// requested root, scanning otherwise.
func ShelfSnapshot(root string) (*Shelf, error) {
	snapMu.RLock()
	cached, takenAt := snapShelf, snapTakenAt
	snapMu.RUnlock()

	if cached != nil && cached.Root == root && time.Since(takenAt) < snapshotTTL {
		return cached, nil
	}
	shelf, _, err := RefreshShelf(root)
	return shelf, err
}

// RefreshShelf rescans the root unconditionally and reports whether the
// shelf structurally changed since the previous snapshot.
func RefreshShelf(root string) (*Shelf, bool, error) {
	shelf, err := Scan(root)
	if err != nil {
		return nil, false, err
	}

	h, err := hash.Compute(shelf.Books)
	if err != nil {
		l().Warnf("shelf hash failed: %v", err)
		h = 0
	}

	snapMu.Lock()
	defer snapMu.Unlock()
	changed := snapShelf == nil || snapShelf.Root != root || h != snapHash
	snapShelf = shelf
	snapHash = h
	snapTakenAt = time.Now()
	if changed {
		l().Debugf("shelf snapshot refreshed: %d books, hash %s", len(shelf.Books), hash.Fmt(h))
	}
	return shelf, changed, nil
}

// ResetSnapshot clears the cache. Tests use it to isolate scans.
func ResetSnapshot() {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapShelf = nil
	snapHash = 0
	snapTakenAt = time.Time{}
}
