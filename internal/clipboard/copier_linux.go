//go:build linux

package clipboard

// copyImageCommand builds the Linux clipboard-set invocation via xclip.
func copyImageCommand(path string) (string, []string) {
	return "xclip", []string{"-selection", "clipboard", "-t", "image/png", "-i", path}
}
