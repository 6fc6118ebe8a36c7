package formatter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/itinerary-turnback/converter"
)

// Report formats
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// FormatForPath guesses the report format from the file extension.
// Unknown extensions fall back to xlsx.
func FormatForPath(path string) string {
	switch ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."); ext {
	case FormatCSV, FormatJSON, FormatXML:
		return ext
	}
	return FormatXLSX
}

// WriteReport writes the report to path in the given format.
// An empty format is derived from the path.
func WriteReport(path, format string, r *converter.Report) error {
	if format == "" {
		format = FormatForPath(path)
	}
	switch format {
	case FormatXLSX:
		return WriteXLSX(path, r)
	case FormatCSV:
		var buf bytes.Buffer
		if err := WriteCSV(&buf, r); err != nil {
			return err
		}
		return os.WriteFile(path, buf.Bytes(), 0o644)
	case FormatJSON:
		b, err := BuildJSON(r)
		if err != nil {
			return err
		}
		return os.WriteFile(path, b, 0o644)
	case FormatXML:
		return os.WriteFile(path, BuildXML(r), 0o644)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
