package history

import (
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry is one journaled activity row.
type Entry struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt int64  `json:"created_at"` // seconds since epoch
}

// Record inserts one activity row and returns its ID.
func Record(db *sql.DB, kind, name, detail string) (string, error) {
	id := newID()
	_, err := db.Exec(
		`INSERT INTO activity (id, kind, name, detail, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, kind, name, nullable(detail), time.Now().Unix(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Recent returns the newest rows, most recent first.
func Recent(db *sql.DB, limit int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT id, kind, name, detail, created_at
		 FROM activity ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var detail sql.NullString
		if err := rows.Scan(&e.ID, &e.Kind, &e.Name, &detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Detail = detail.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
