package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumn is returned when a required flat table column is absent
var ErrMissingColumn = errors.New("missing column")

// requiredColumns are needed by the turnback detector; path, route and
// vertexName are informational and may be absent.
var requiredColumns = []string{"itinerary", "documentName", "vertexID", "neighbourID"}

// WriteCSV writes the header and every row
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a flat table, locating columns by header name
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("flat table: empty file: %w", ErrMissingColumn)
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	for _, col := range requiredColumns {
		if idx(col) < 0 {
			return nil, fmt.Errorf("flat table: %q: %w", col, ErrMissingColumn)
		}
	}
	pos := make([]int, len(Columns))
	for i, col := range Columns {
		pos[i] = idx(col)
	}
	rows := make([]Row, 0, len(rec)-1)
	for _, line := range rec[1:] {
		f := make([]string, len(Columns))
		for i, p := range pos {
			if p >= 0 && p < len(line) {
				f[i] = line[p]
			}
		}
		rows = append(rows, RowFromFields(f))
	}
	return rows, nil
}

// WriteCSVFile writes rows to path
func WriteCSVFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadCSVFile reads rows from path
func ReadCSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
