//go:build darwin

package clipboard

import "fmt"

// copyImageCommand builds the macOS clipboard-set invocation.
// osascript reads the file and places it on the clipboard as PNG data.
func copyImageCommand(path string) (string, []string) {
	script := fmt.Sprintf(`set the clipboard to (read (POSIX file %q) as «class PNGf»)`, path)
	return "osascript", []string{"-e", script}
}
