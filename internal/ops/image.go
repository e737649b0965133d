package ops

import (
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/settings"
)

// ImageContentInput contains parameters for the GetImageContent operation.
type ImageContentInput struct {
	Filename string
}

// ImageContentOutput contains the result of the GetImageContent operation.
// Data carries the raw bytes base64-encoded for transport across the
// command/response boundary.
type ImageContentOutput struct {
	Filename string `json:"filename"`
	Encoding string `json:"encoding"`
	Data     string `json:"data"`
}

// GetImageContent reads one binary artifact and returns it transport-encoded.
// A missing file is NOT_FOUND; a failed read on an existing file is
// READ_FAILED, so the two are distinguishable by the caller.
func GetImageContent(env *Env, input ImageContentInput) (*ImageContentOutput, error) {
	if err := ValidateFilename(input.Filename); err != nil {
		return nil, err
	}

	dir, err := settings.ResolveCapturesDir(env.BaseDir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, input.Filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(input.Filename)
		}
		return nil, errors.NewReadFailed("image file", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewReadFailed("image file", err)
	}

	return &ImageContentOutput{
		Filename: input.Filename,
		Encoding: "base64",
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}
