// Package store keeps the quiz event trail in SQLite. Every event kind has
// its own table laid out from the ent schemas in ent/schema; a shared
// counter orders events across tables.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	entschema "entgo.io/ent/dialect/sql/schema"

	"github.com/abhisek/certquiz/internal/config"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// pragmas are applied to every pooled connection through the DSN.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// Store holds the ent SQL driver and provides access to the event repo.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

// Open creates a Store backed by the SQLite database at path, creating
// its directory and running auto-migration.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := config.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)

	if err := migrate(ctx, drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(ctx, drv)
	if err != nil {
		drv.Close()
		return nil, err
	}
	return &Store{db: db, drv: drv, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// EventRepo returns the event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{drv: s.drv, seq: s.seq}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

func migrate(ctx context.Context, drv dialect.Driver) error {
	tables, err := Tables()
	if err != nil {
		return err
	}
	m, err := entschema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}

func dsn(path string) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	return "file:" + path + "?" + q.Encode()
}
