package capture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grabapp/grabd/internal/errors"
)

// metadataWire mirrors Metadata with pointer fields so that absent required
// fields are detectable after decoding.
type metadataWire struct {
	ID            *string  `json:"id"`
	Timestamp     *string  `json:"timestamp"`
	Type          *string  `json:"type"`
	Filename      *string  `json:"filename"`
	FileExtension *string  `json:"fileExtension"`
	FileSize      *int64   `json:"fileSize"`
	Metadata      *Details `json:"metadata"`
}

// LoadMetadata reads and parses one sidecar file.
//
// Parsing is strict on the required fields (id, timestamp, type, filename,
// fileExtension, fileSize) and permissive on the optional detail fields.
// Any I/O or schema failure is returned to the caller; the registry scan
// downgrades such failures to "no metadata" rather than propagating.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewReadFailed("metadata file", err)
	}

	wire := &metadataWire{}
	if err := json.Unmarshal(data, wire); err != nil {
		return nil, errors.NewParseFailed("metadata file", err)
	}
	if err := wire.validate(); err != nil {
		return nil, errors.NewParseFailed("metadata file", err)
	}

	md := &Metadata{
		ID:            *wire.ID,
		Timestamp:     *wire.Timestamp,
		Type:          *wire.Type,
		Filename:      *wire.Filename,
		FileExtension: *wire.FileExtension,
		FileSize:      *wire.FileSize,
	}
	if wire.Metadata != nil {
		md.Metadata = *wire.Metadata
	}
	return md, nil
}

func (w *metadataWire) validate() error {
	required := map[string]bool{
		"id":            w.ID != nil,
		"timestamp":     w.Timestamp != nil,
		"type":          w.Type != nil,
		"filename":      w.Filename != nil,
		"fileExtension": w.FileExtension != nil,
		"fileSize":      w.FileSize != nil,
	}
	for field, present := range required {
		if !present {
			return fmt.Errorf("missing required field %q", field)
		}
	}
	return nil
}
