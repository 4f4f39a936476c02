// Package sqlite stores students in a local SQLite file. It is meant for
// development machines without PostgreSQL.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"escuela/internal/app/server/config"
	"escuela/internal/infrastructure/migration"

	_ "github.com/mattn/go-sqlite3"
)

const Scheme = "sqlite3://"

type Storage struct {
	db *sql.DB
}

// New opens the database named by a sqlite3:// URI and applies migrations.
func New(cfg *config.Config) (*Storage, error) {
	db, err := Open(strings.TrimPrefix(cfg.DB.DatabaseURI, Scheme))
	if err != nil {
		return nil, err
	}

	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return &Storage{db: db}, nil
}

// Open opens path without running migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
