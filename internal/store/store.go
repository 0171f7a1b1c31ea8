// Package store handles SQLite persistence of copy history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuipass/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for copy history. It never sees password text.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS copies (
			id INTEGER PRIMARY KEY,
			copied_at TEXT NOT NULL,
			length INTEGER NOT NULL,
			uppercase INTEGER NOT NULL,
			lowercase INTEGER NOT NULL,
			numbers INTEGER NOT NULL,
			symbols INTEGER NOT NULL,
			score INTEGER NOT NULL,
			label TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_copies_copied_at ON copies(copied_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// timeLayout is fixed width so copied_at sorts and compares as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// InsertCopy stores a copy event and returns its id.
func (s *Store) InsertCopy(ctx context.Context, ev model.CopyEvent) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO copies (copied_at, length, uppercase, lowercase, numbers, symbols, score, label)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.CopiedAt.UTC().Format(timeLayout),
		ev.Length,
		ev.Uppercase,
		ev.Lowercase,
		ev.Numbers,
		ev.Symbols,
		ev.Score,
		string(ev.Label),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecordCopy stores ev, discarding the id.
func (s *Store) RecordCopy(ctx context.Context, ev model.CopyEvent) error {
	if _, err := s.InsertCopy(ctx, ev); err != nil {
		return fmt.Errorf("failed to record copy: %w", err)
	}
	return nil
}

// ListCopies returns copy events in chronological order. Last keeps only the most recent N.
func (s *Store) ListCopies(ctx context.Context, filter model.HistoryFilter) ([]model.CopyEvent, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Since != nil {
		clauses = append(clauses, "copied_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}
	query := fmt.Sprintf(`SELECT id, copied_at, length, uppercase, lowercase, numbers, symbols, score, label
		FROM copies
		WHERE %s
		ORDER BY copied_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var events []model.CopyEvent
	for rows.Next() {
		var ev model.CopyEvent
		var copiedAt, label string
		if err := rows.Scan(&ev.ID, &copiedAt, &ev.Length, &ev.Uppercase, &ev.Lowercase, &ev.Numbers, &ev.Symbols, &ev.Score, &label); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, copiedAt)
		if err != nil {
			return nil, err
		}
		ev.CopiedAt = parsed
		ev.Label = model.Label(label)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(events) > filter.Last {
		events = events[len(events)-filter.Last:]
	}
	return events, nil
}
