package settings

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grabapp/grabd/internal/errors"
)

// Record holds the persisted application settings.
// Both fields are absolute paths; they are equal on first run.
type Record struct {
	// CaptureFolder is the user-configured directory for captured artifacts.
	CaptureFolder string `json:"capture_folder"`

	// DefaultCaptureFolder is the platform default, fixed once computed.
	// Used only as a fallback when CaptureFolder is missing on disk.
	DefaultCaptureFolder string `json:"default_capture_folder"`
}

// FileName is the settings file name inside the base directory.
const FileName = "settings.json"

// CapturesDirName is the default captures directory name inside the base directory.
const CapturesDirName = "captures"

// DefaultBaseDir returns the platform application-support directory for Grab.
// On macOS this is ~/Library/Application Support/Grab.
func DefaultBaseDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewInternal(fmt.Errorf("could not determine user config directory: %w", err))
	}
	return filepath.Join(configDir, "Grab"), nil
}

// Path returns the settings file path for a base directory.
func Path(baseDir string) string {
	return filepath.Join(baseDir, FileName)
}

// defaultCapturesDir computes baseDir/captures and ensures it exists on disk.
func defaultCapturesDir(baseDir string) (string, error) {
	dir := filepath.Join(baseDir, CapturesDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.NewInternal(fmt.Errorf("failed to create default captures directory: %w", err))
	}
	return dir, nil
}

// Load reads the settings record from baseDir/settings.json.
//
// If the file is absent, Load computes the platform default captures
// directory (creating it on disk), writes a new record with both fields set
// to it, and returns that record. A parse failure of an existing file is
// surfaced, never silently defaulted: corrupt settings should be visible to
// the caller rather than reset behind its back.
func Load(baseDir string) (*Record, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return create(baseDir)
		}
		return nil, errors.NewReadFailed("settings file", err)
	}

	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, errors.NewParseFailed("settings file", err)
	}
	return rec, nil
}

// create writes a first-run settings record with both fields set to the
// default captures directory.
func create(baseDir string) (*Record, error) {
	dir, err := defaultCapturesDir(baseDir)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		CaptureFolder:        dir,
		DefaultCaptureFolder: dir,
	}
	if err := write(baseDir, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Save validates that the configured capture folder exists (creating it if
// not), then rewrites the settings file in full. Last-writer-wins; no atomic
// rename is attempted.
func Save(baseDir string, rec *Record) error {
	if rec.CaptureFolder == "" {
		return errors.NewInvalidRequest("capture_folder must not be empty")
	}
	if err := os.MkdirAll(rec.CaptureFolder, 0o755); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to create capture folder: %w", err))
	}
	return write(baseDir, rec)
}

func write(baseDir string, rec *Record) error {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to create base directory: %w", err))
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.NewInternal(err)
	}
	if err := os.WriteFile(Path(baseDir), data, 0o644); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to write settings file: %w", err))
	}
	return nil
}

// ResolveCapturesDir derives the effective captures directory.
//
// The configured folder wins if it still exists on disk. Otherwise the
// platform default is returned (created if absent) WITHOUT rewriting the
// settings record: a stale configured path may be a transiently unmounted
// volume and the user's intent must not be erased. Settings load failures
// take the same fallback path; listing must never hard-fail merely because
// settings are temporarily unreadable.
func ResolveCapturesDir(baseDir string) (string, error) {
	rec, err := Load(baseDir)
	if err == nil && rec.CaptureFolder != "" {
		if info, statErr := os.Stat(rec.CaptureFolder); statErr == nil && info.IsDir() {
			return rec.CaptureFolder, nil
		}
	}
	return defaultCapturesDir(baseDir)
}
