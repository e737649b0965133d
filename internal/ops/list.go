package ops

import (
	"github.com/grabapp/grabd/internal/capture"
	"github.com/grabapp/grabd/internal/settings"
)

// ListCapturesOutput contains the result of the ListCaptures operation.
type ListCapturesOutput struct {
	Items  []capture.Entry `json:"items"`
	Count  int             `json:"count"`
	Sort   string          `json:"sort"`
	ScanID string          `json:"scan_id"`
}

// ListCaptures scans the resolved captures directory and returns one entry
// per recognized artifact, newest first. The listing is rebuilt from the
// filesystem on every call; nothing is cached.
func ListCaptures(env *Env) (*ListCapturesOutput, error) {
	dir, err := settings.ResolveCapturesDir(env.BaseDir)
	if err != nil {
		return nil, err
	}

	items, err := capture.Scan(dir)
	if err != nil {
		return nil, err
	}

	return &ListCapturesOutput{
		Items:  items,
		Count:  len(items),
		Sort:   "modified_desc",
		ScanID: newScanID(),
	}, nil
}
