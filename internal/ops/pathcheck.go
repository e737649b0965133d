package ops

import (
	"path/filepath"
	"strings"

	"github.com/grabapp/grabd/internal/errors"
)

// ValidateFilename checks a caller-supplied artifact name before it is
// joined to the captures directory. Names address files directly inside
// that directory, so separators and traversal sequences are rejected
// outright rather than cleaned.
func ValidateFilename(name string) error {
	if name == "" {
		return errors.NewInvalidRequest("filename is required")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.NewInvalidRequest("filename must not contain path separators")
	}
	if name == "." || name == ".." || containsTraversal(name) {
		return errors.NewInvalidRequest("filename must not contain directory traversal (..)")
	}
	return nil
}

// containsTraversal reports whether any path component is "..".
func containsTraversal(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return true
		}
	}
	return false
}
