// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	foliolog "folio/utils/log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func l() *foliolog.FolioLogger {
	return foliolog.L().With("component", "store")
}

// Store persists reading positions in a local sqlite file.
type Store struct {
	db *sql.DB
}

// Open migrates the database at path and opens it. A single connection is
// enough for a single-user TUI and sidesteps sqlite write contention.
func Open(path string) (*Store, error) {
	if err := runMigrations(path); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	l().Debugf("store opened at %s", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func runMigrations(path string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Now is the store clock, UTC and second precision so sqlite round-trips
// compare equal.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
