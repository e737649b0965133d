package ops

import (
	"os"
	"path/filepath"

	"github.com/grabapp/grabd/internal/capture"
	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/settings"
)

// MetadataInput contains parameters for the GetCaptureMetadata operation.
type MetadataInput struct {
	Filename string
}

// GetCaptureMetadata loads the sidecar record for one named artifact.
// Unlike the registry scan, this is an explicitly-requested read: a missing
// sidecar is NOT_FOUND and a parse failure is surfaced, not downgraded.
func GetCaptureMetadata(env *Env, input MetadataInput) (*capture.Metadata, error) {
	if err := ValidateFilename(input.Filename); err != nil {
		return nil, err
	}

	dir, err := settings.ResolveCapturesDir(env.BaseDir)
	if err != nil {
		return nil, err
	}

	sidecarPath := filepath.Join(dir, capture.SidecarName(input.Filename))
	if _, err := os.Stat(sidecarPath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(capture.SidecarName(input.Filename))
		}
		return nil, errors.NewReadFailed("metadata file", err)
	}

	return capture.LoadMetadata(sidecarPath)
}
