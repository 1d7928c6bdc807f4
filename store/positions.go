// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Position is where the reader last was in one book. Slug and title are
// denormalized so the start screen can label recents even when a book has
// left the shelf.
type Position struct {
	BookID    uuid.UUID
	Slug      string
	Title     string
	Page      int
	UpdatedAt time.Time
}

// SavePosition upserts the reading position for one book.
func (s *Store) SavePosition(p Position) error {
	if p.Page < 1 {
		return fmt.Errorf("position page must be >= 1, got %d", p.Page)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO positions (book_id, slug, title, page, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(book_id) DO UPDATE SET
			slug = excluded.slug,
			title = excluded.title,
			page = excluded.page,
			updated_at = excluded.updated_at`,
		p.BookID.String(), p.Slug, p.Title, p.Page, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	return nil
}

// PositionFor returns the saved position for a book; ok is false when the
// book was never opened.
func (s *Store) PositionFor(bookID uuid.UUID) (Position, bool, error) {
	row := s.db.QueryRow(`
		SELECT book_id, slug, title, page, updated_at
		FROM positions WHERE book_id = ?`, bookID.String())

	p, err := scanPosition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, false, nil
	}
	if err != nil {
		return Position{}, false, fmt.Errorf("load position: %w", err)
	}
	return p, true, nil
}

// Recent returns the most recently updated positions, newest first.
// A limit <= 0 returns all of them.
func (s *Store) Recent(limit int) ([]Position, error) {
	q := `
		SELECT book_id, slug, title, page, updated_at
		FROM positions ORDER BY updated_at DESC, title ASC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("load recents: %w", err)
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountPositions reports how many books have a saved position.
func (s *Store) CountPositions() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM positions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count positions: %w", err)
	}
	return n, nil
}

// DeletePosition removes one book's position.
func (s *Store) DeletePosition(bookID uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM positions WHERE book_id = ?`, bookID.String()); err != nil {
		return fmt.Errorf("delete position: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosition(row rowScanner) (Position, error) {
	var p Position
	var id string
	if err := row.Scan(&id, &p.Slug, &p.Title, &p.Page, &p.UpdatedAt); err != nil {
		return Position{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Position{}, fmt.Errorf("parse book id %q: %w", id, err)
	}
	p.BookID = parsed
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
