package lesson

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/jovid18/nihonki/internal/validate"
)

// Format is the encoding of a lesson file.
type Format int

const (
	FormatJSON Format = iota // JSON, with // and /* */ comments and trailing commas allowed
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// extensions lists the recognized lesson file extensions in lookup order.
var extensions = []struct {
	ext    string
	format Format
}{
	{".json", FormatJSON},
	{".jsonc", FormatJSON},
	{".yaml", FormatYAML},
	{".yml", FormatYAML},
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if e.ext == ext {
			return e.format, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// IDFromPath strips the directory and extension from a lesson file path:
// "data/12.json" is lesson "12".
func IDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Parse decodes and validates a lesson document. Missing word lists are
// treated as empty; entries without a prompt or answer are rejected.
func Parse(data []byte, format Format) (*Lesson, error) {
	var l Lesson

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &l); err != nil {
			return nil, fmt.Errorf("%w: parsing json: %v", ErrInvalid, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("%w: parsing yaml: %v", ErrInvalid, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := validate.Struct(l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if l.Kanji == nil {
		l.Kanji = []Entry{}
	}
	if l.Katakana == nil {
		l.Katakana = []Entry{}
	}
	return &l, nil
}

// validID rejects IDs that could escape the lesson directory or URL path.
func validID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
