package ops

import (
	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/settings"
)

// SaveSettingsInput contains parameters for the SaveAppSettings operation.
type SaveSettingsInput struct {
	CaptureFolder        string
	DefaultCaptureFolder string
}

// GetAppSettings loads the persisted settings record, creating it on first
// access.
func GetAppSettings(env *Env) (*settings.Record, error) {
	return settings.Load(env.BaseDir)
}

// SaveAppSettings rewrites the settings record in full. The default capture
// folder is fixed once computed: when the input omits it, the persisted
// value is carried over.
func SaveAppSettings(env *Env, input SaveSettingsInput) (*settings.Record, error) {
	if input.CaptureFolder == "" {
		return nil, errors.NewInvalidRequest("capture_folder is required")
	}

	rec := &settings.Record{
		CaptureFolder:        input.CaptureFolder,
		DefaultCaptureFolder: input.DefaultCaptureFolder,
	}
	if rec.DefaultCaptureFolder == "" {
		current, err := settings.Load(env.BaseDir)
		if err != nil {
			return nil, err
		}
		rec.DefaultCaptureFolder = current.DefaultCaptureFolder
	}

	if err := settings.Save(env.BaseDir, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
