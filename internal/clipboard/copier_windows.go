//go:build windows

package clipboard

import "fmt"

// copyImageCommand builds the Windows clipboard-set invocation.
// PowerShell loads the image and hands it to the clipboard API.
func copyImageCommand(path string) (string, []string) {
	script := fmt.Sprintf(
		`Add-Type -AssemblyName System.Windows.Forms; `+
			`[System.Windows.Forms.Clipboard]::SetImage([System.Drawing.Image]::FromFile(%q))`,
		path)
	return "powershell", []string{"-NoProfile", "-STA", "-Command", script}
}
