// Package store is the durable persistence collaborator: a local SQLite
// database holding projects, tasks, and comments.
//
// The board applies every mutation to its in-memory state first and writes
// here afterwards; a failed write surfaces as a notification, never as a
// rollback of the in-memory state.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jthornberg/stageboard/internal/domain"
)

// Store is a SQLite-backed project store.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// New opens (creating if necessary) the database at path and applies the
// schema. WAL mode keeps readers unblocked during the board's async writes.
func New(path string, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// timeFormat is how timestamps are stored; RFC 3339 keeps them sortable as
// text.
const timeFormat = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTime(v string) time.Time {
	t, err := time.Parse(timeFormat, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// joinStages serializes a completed-stage set for the completed_stages
// column. Stage names never contain commas.
func joinStages(stages []domain.Stage) string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = string(s)
	}
	return strings.Join(names, ",")
}

// splitStages parses a completed_stages column value, dropping anything that
// is no longer a known stage.
func splitStages(v string) []domain.Stage {
	if v == "" {
		return nil
	}
	var stages []domain.Stage
	for _, name := range strings.Split(v, ",") {
		if s, err := domain.ParseStage(name); err == nil {
			stages = append(stages, s)
		}
	}
	return stages
}
