// Package runlog keeps an optional sqlite ledger of completed generation
// runs, one row per run. Nothing is opened unless a ledger path is given.
package runlog

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Run describes one completed generation run.
type Run struct {
	Rows         uint64
	StationsPath string
	OutputPath   string
	Seed         int64
	SizeBytes    int64
	Duration     time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
  id            TEXT PRIMARY KEY,
  finished_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
  row_count     INTEGER NOT NULL,
  stations_path TEXT NOT NULL,
  output_path   TEXT NOT NULL,
  seed          INTEGER NOT NULL,
  size_bytes    INTEGER NOT NULL,
  duration_ms   INTEGER NOT NULL
)
`

// Record opens (or creates) the ledger at path and inserts one row for r.
func Record(path string, r Run) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("close run ledger", "error", closeErr)
		}
	}()
	return Insert(db, r)
}

// Open opens the ledger database and ensures the runs table exists.
func Open(path string) (*sql.DB, error) {
	dsn, err := buildDSN(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure runs table: %w", err)
	}

	return db, nil
}

// Insert adds one run row with a fresh uuid id.
func Insert(db *sql.DB, r Run) error {
	_, err := db.Exec(
		`INSERT INTO runs (id, row_count, stations_path, output_path, seed, size_bytes, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		int64(r.Rows),
		r.StationsPath,
		r.OutputPath,
		r.Seed,
		r.SizeBytes,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func buildDSN(path string) (string, error) {
	// Ensure the directory exists for a file-backed ledger
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// - busy_timeout: helps with "database is locked" when something reads the
	//   ledger while a run finishes
	// - journal_mode=WAL: cheap durability for the single-writer case
	params := []string{
		"_busy_timeout=5000",
		"_journal_mode=WAL",
	}

	// If caller provided something like "file:runs.db?x=y", don't double-wrap
	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + strings.Join(params, "&"), nil
	}

	return fmt.Sprintf("file:%s?%s", path, strings.Join(params, "&")), nil
}
