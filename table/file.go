package table

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an on-disk flat table encoding
type Format string

const (
	FormatCSV      Format = "csv"
	FormatSnapshot Format = "pb"
)

// FormatForPath guesses the format from the file extension, defaulting to CSV
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pb", ".bin":
		return FormatSnapshot
	default:
		return FormatCSV
	}
}

// ErrFormatMismatch is returned when a requested format disagrees with the
// format implied by the file extension
var ErrFormatMismatch = errors.New("flat table format does not match file extension")

// FormatFor returns the format to use for path. The extension decides, as in
// FormatForPath; an explicit format that disagrees with it is rejected so a
// file is always read back with the format it was written in.
func FormatFor(path string, format Format) (Format, error) {
	implied := FormatForPath(path)
	if format != "" && format != implied {
		return "", fmt.Errorf("%s is %s, not %s: %w", path, implied, format, ErrFormatMismatch)
	}
	return implied, nil
}

// WriteFile writes rows to path in the given format
func WriteFile(path string, format Format, rows []Row) error {
	switch format {
	case FormatCSV:
		return WriteCSVFile(path, rows)
	case FormatSnapshot:
		return WriteSnapshotFile(path, rows)
	default:
		return fmt.Errorf("unknown flat table format %q", format)
	}
}

// ReadFile reads rows from path in the given format
func ReadFile(path string, format Format) ([]Row, error) {
	switch format {
	case FormatCSV:
		return ReadCSVFile(path)
	case FormatSnapshot:
		return ReadSnapshotFile(path)
	default:
		return nil, fmt.Errorf("unknown flat table format %q", format)
	}
}
