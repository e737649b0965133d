package ops

import (
	"os"
	"path/filepath"

	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/history"
	"github.com/grabapp/grabd/internal/settings"
)

// CopyInput contains parameters for the CopyImageToClipboard operation.
type CopyInput struct {
	Filename string
}

// CopyOutput contains the result of the CopyImageToClipboard operation.
type CopyOutput struct {
	Filename string `json:"filename"`
	Copied   bool   `json:"copied"`
}

// CopyImageToClipboard resolves one named artifact, verifies it exists, and
// pushes it onto the system clipboard. The call blocks until the platform
// invocation finishes; its failure is surfaced with captured diagnostics.
func CopyImageToClipboard(env *Env, input CopyInput) (*CopyOutput, error) {
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

	if err := env.Copier.CopyImage(path); err != nil {
		return nil, err
	}

	recordActivity(env, history.KindCopy, input.Filename, "")

	return &CopyOutput{Filename: input.Filename, Copied: true}, nil
}

// recordActivity journals one action. The journal is supplemental, so a
// write failure is logged and absorbed.
func recordActivity(env *Env, kind, name, detail string) {
	if env.DB == nil {
		return
	}
	if _, err := history.Record(env.DB, kind, name, detail); err != nil {
		env.Logger().Warn("activity journal write failed", "kind", kind, "error", err)
	}
}
