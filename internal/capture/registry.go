package capture

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/grabapp/grabd/internal/errors"
)

// Scan enumerates dir and returns one Entry per recognized artifact, newest
// first. Ties on Modified are unordered; mtimes have one-second resolution
// so exact ties are rare but possible.
//
// An absent directory yields an empty slice, not an error: an empty gallery
// is a valid state distinct from a misconfigured path. A directory read
// failure or a per-entry stat failure is a hard error for the whole call,
// since it means the directory itself is in an inconsistent state. A sidecar
// that exists but does not parse never aborts the listing and never hides
// its artifact: the entry keeps HasMetadata=true with Metadata=nil.
func Scan(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, errors.NewReadFailed("captures directory", err)
	}

	captures := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}

		name := de.Name()
		captureType, ok := Classify(name)
		if !ok {
			continue
		}

		info, err := de.Info()
		if err != nil {
			return nil, errors.NewReadFailed(fmt.Sprintf("file metadata for %s", name), err)
		}

		sidecarPath := filepath.Join(dir, SidecarName(name))
		hasMetadata := false
		if _, err := os.Stat(sidecarPath); err == nil {
			hasMetadata = true
		}

		var md *Metadata
		if hasMetadata {
			if loaded, err := LoadMetadata(sidecarPath); err == nil {
				md = loaded
			}
			// Parse failure: keep the entry, drop the metadata.
		}

		captures = append(captures, Entry{
			Name:        name,
			Path:        filepath.Join(dir, name),
			Modified:    info.ModTime().Unix(),
			Size:        info.Size(),
			CaptureType: captureType,
			HasMetadata: hasMetadata,
			Metadata:    md,
		})
	}

	sort.Slice(captures, func(i, j int) bool {
		return captures[i].Modified > captures[j].Modified
	})

	return captures, nil
}
