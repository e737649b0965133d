package ops

import "github.com/grabapp/grabd/internal/settings"

// CapturesDirOutput contains the result of the GetCapturesDir operation.
type CapturesDirOutput struct {
	Path string `json:"path"`
}

// GetCapturesDir resolves the effective captures directory: the configured
// folder if it still exists, else the platform default (created if absent).
func GetCapturesDir(env *Env) (*CapturesDirOutput, error) {
	dir, err := settings.ResolveCapturesDir(env.BaseDir)
	if err != nil {
		return nil, err
	}
	return &CapturesDirOutput{Path: dir}, nil
}
