// Package clipboard bridges the external capture producer's one-shot
// clipboard event file and the system clipboard.
package clipboard

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/grabapp/grabd/internal/errors"
)

// EventFileName is the single-slot event file inside the base directory.
// Its presence/absence is the synchronization state with the producer:
// at most one event is pending, and a producer write before consumption
// silently replaces the previous payload.
const EventFileName = "clipboard-event.json"

// EventPath returns the clipboard event file path for a base directory.
func EventPath(baseDir string) string {
	return filepath.Join(baseDir, EventFileName)
}

// PollEvent consumes the pending clipboard event, if any.
//
// An absent file means no event (not an error). A present file is read,
// parsed as an opaque JSON value, deleted, and returned verbatim. Deletion
// is best-effort: a failed delete is swallowed so the read stays idempotent
// from the caller's perspective. There is a narrow window where the producer
// may overwrite the file between read and delete, dropping that event; the
// signal is advisory, so this is accepted.
func PollEvent(baseDir string) (json.RawMessage, bool, error) {
	path := EventPath(baseDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.NewReadFailed("clipboard event file", err)
	}

	// Consume the slot before validating: a malformed event must not jam
	// the mailbox.
	_ = os.Remove(path)

	if !json.Valid(data) {
		return nil, false, errors.NewParseFailed("clipboard event file", stderrors.New("not valid JSON"))
	}
	return json.RawMessage(data), true, nil
}
