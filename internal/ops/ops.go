// Package ops implements the operations exposed to the presentation layer,
// one file per operation. All operations are synchronous request/response
// and never hold a filesystem handle across calls.
package ops

import (
	"crypto/rand"
	"database/sql"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/grabapp/grabd/internal/clipboard"
)

// Env holds the dependencies shared by all operations.
type Env struct {
	// BaseDir is the Grab application-support directory holding the settings
	// file, the clipboard event file, the history journal, and the default
	// captures directory.
	BaseDir string

	// DB is the activity journal. May be nil; journaling is then skipped.
	DB *sql.DB

	// Copier sets the system clipboard from an image file.
	Copier clipboard.Copier

	// Log receives diagnostics for absorbed failures.
	Log *slog.Logger
}

// Logger returns the environment logger, defaulting to slog.Default.
func (e *Env) Logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}

// DefaultActivityLimit bounds RecentActivity when no limit is given.
const DefaultActivityLimit = 50

// MaxActivityLimit is the hard cap for RecentActivity.
const MaxActivityLimit = 500

// newScanID generates a ULID tagging one listing snapshot.
func newScanID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
