package problem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Supported document formats.
const (
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// FormatOf infers the document format from a file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Decode reads a document of the given format.
func Decode(r io.Reader, format string) (*Problem, error) {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return DecodeYAML(r)
	case FormatCSV:
		return DecodeCSV(r)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

// Load opens path and decodes it according to its extension.
func Load(path string) (*Problem, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open problem: %w", err)
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}
