package ops

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"

	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/settings"
)

// Text content formats.
const (
	TextFormatRaw  = "raw"
	TextFormatHTML = "html"
)

// TextContentInput contains parameters for the GetTextContent operation.
type TextContentInput struct {
	Filename string
	Format   string // "raw" (default) or "html"
}

// TextContentOutput contains the result of the GetTextContent operation.
type TextContentOutput struct {
	Filename string `json:"filename"`
	Format   string `json:"format"`
	Content  string `json:"content"`
}

// GetTextContent returns the content of one text artifact. The raw format
// applies no size limit and no encoding validation. The html format renders
// the text as markdown for presentation-layer preview.
func GetTextContent(env *Env, input TextContentInput) (*TextContentOutput, error) {
	if err := ValidateFilename(input.Filename); err != nil {
		return nil, err
	}

	format := input.Format
	if format == "" {
		format = TextFormatRaw
	}
	if format != TextFormatRaw && format != TextFormatHTML {
		return nil, errors.NewInvalidRequest("format must be \"raw\" or \"html\"")
	}

	dir, err := settings.ResolveCapturesDir(env.BaseDir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, input.Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(input.Filename)
		}
		return nil, errors.NewReadFailed("text file", err)
	}

	content := string(data)
	if format == TextFormatHTML {
		var buf bytes.Buffer
		if err := goldmark.Convert(data, &buf); err != nil {
			return nil, errors.NewInternal(err)
		}
		content = buf.String()
	}

	return &TextContentOutput{
		Filename: input.Filename,
		Format:   format,
		Content:  content,
	}, nil
}
