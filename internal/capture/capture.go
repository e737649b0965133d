// Package capture holds the capture registry: artifact types, sidecar
// metadata parsing, and directory scanning.
package capture

import (
	"path/filepath"
	"strings"
)

// Type classifies a capture artifact by its file extension.
type Type string

const (
	TypeImage Type = "image"
	TypeText  Type = "text"
)

// SidecarSuffix is appended to an artifact file name to form its sidecar name.
const SidecarSuffix = ".json"

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

var textExts = map[string]bool{
	".txt": true,
}

// Classify derives the capture type from a file name's extension,
// case-insensitively. Files outside both sets are not captures.
func Classify(name string) (Type, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case imageExts[ext]:
		return TypeImage, true
	case textExts[ext]:
		return TypeText, true
	default:
		return "", false
	}
}

// SidecarName returns the sidecar file name for an artifact file name.
func SidecarName(name string) string {
	return name + SidecarSuffix
}

// Entry is a read-only snapshot of one artifact at scan time.
type Entry struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Modified    int64     `json:"modified"` // seconds since epoch
	Size        int64     `json:"size"`
	CaptureType Type      `json:"capture_type"`
	HasMetadata bool      `json:"has_metadata"`
	Metadata    *Metadata `json:"metadata"`
}

// Metadata is the producer-written sidecar record for one artifact.
// The producer's type field may disagree with the extension-derived
// CaptureType of the entry; no reconciliation is performed.
type Metadata struct {
	ID            string  `json:"id"`
	Timestamp     string  `json:"timestamp"` // producer-supplied, not reparsed
	Type          string  `json:"type"`
	Filename      string  `json:"filename"`
	FileExtension string  `json:"fileExtension"`
	FileSize      int64   `json:"fileSize"` // producer-reported, may differ from disk
	Metadata      Details `json:"metadata"`
}

// Details holds the optional sidecar detail fields. All are optional; a
// sidecar with none of them still parses.
type Details struct {
	Dimensions      *Dimensions `json:"dimensions,omitempty"`
	ApplicationName *string     `json:"applicationName,omitempty"`
	WindowTitle     *string     `json:"windowTitle,omitempty"`
	ClipboardType   *string     `json:"clipboardType,omitempty"`
}

// Dimensions is the pixel size of an image capture as reported by the producer.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
