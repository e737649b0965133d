package clipboard

import (
	"os"
	"os/exec"

	"github.com/grabapp/grabd/internal/errors"
)

// Copier sets the system clipboard from an image file on disk.
// The core resolution and existence checks live in the ops layer; a Copier
// only performs the platform invocation, so alternate backends can be
// substituted (and tests can use a fake).
type Copier interface {
	CopyImage(path string) error
}

// runnerFunc executes a command and returns its combined output.
// Abstracted so tests can observe the invocation without a subprocess.
type runnerFunc func(name string, args ...string) ([]byte, error)

// SystemCopier invokes the platform clipboard-set command as a subprocess.
// The calling request blocks until the subprocess exits.
type SystemCopier struct {
	run runnerFunc
}

// NewSystemCopier creates a Copier backed by the OS clipboard command.
func NewSystemCopier() *SystemCopier {
	return &SystemCopier{
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		},
	}
}

// CopyImage pushes the image at path onto the system clipboard.
// A non-zero exit or invocation error is surfaced with the captured
// diagnostic output.
func (c *SystemCopier) CopyImage(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFound(path)
		}
		return errors.NewReadFailed("image file", err)
	}

	name, args := copyImageCommand(path)
	output, err := c.run(name, args...)
	if err != nil {
		return errors.NewClipboardFailed(string(output), err)
	}
	return nil
}
