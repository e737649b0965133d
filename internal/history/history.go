// Package history keeps a SQLite journal of user-visible actions: clipboard
// copies, consumed clipboard events, and capture-id activations. The journal
// is supplemental: writes are best-effort and never fail the operation that
// triggered them.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Activity kinds.
const (
	KindCopy           = "copy"
	KindClipboardEvent = "clipboard-event"
	KindCaptureID      = "capture-id"
)

// Init initializes the SQLite journal at baseDir/history.db.
// The baseDir parameter allows tests to use t.TempDir().
func Init(baseDir string) (*sql.DB, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	dbPath := filepath.Join(baseDir, "history.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := getUserVersion(db)
	if err != nil {
		return err
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS activity (
		  id         TEXT PRIMARY KEY,
		  kind       TEXT NOT NULL,
		  name       TEXT NOT NULL,
		  detail     TEXT,
		  created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_activity_created
		ON activity(created_at DESC);

		CREATE INDEX IF NOT EXISTS idx_activity_kind
		ON activity(kind, created_at DESC);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

func getUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

func setUserVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d;", version)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
