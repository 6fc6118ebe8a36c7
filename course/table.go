package course

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumn is returned when the itinerary or course id column is absent
var ErrMissingColumn = errors.New("missing column")

// Record is one course table row
type Record struct {
	Itinerary string
	CourseID  string
	Line      int // 1-based source line, header included
}

// Table is a course table in source order
type Table struct {
	Records []Record
}

// LoadOptions names the columns to read
type LoadOptions struct {
	ItineraryColumn string
	CourseIDColumn  string
	// Sheet selects the spreadsheet for XLSX input; empty means the first sheet
	Sheet string
}

// DefaultLoadOptions reads the Itinerary and CourseID columns
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{ItineraryColumn: "Itinerary", CourseIDColumn: "CourseID"}
}

func (o LoadOptions) withDefaults() LoadOptions {
	d := DefaultLoadOptions()
	if o.ItineraryColumn == "" {
		o.ItineraryColumn = d.ItineraryColumn
	}
	if o.CourseIDColumn == "" {
		o.CourseIDColumn = d.CourseIDColumn
	}
	return o
}

// LoadFile reads a CSV or XLSX course table, chosen by extension
func LoadFile(path string, opts LoadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load reads a CSV course table
func Load(r io.Reader, opts LoadOptions) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRecords(rec, opts)
}

// LoadXLSX reads a course table from a spreadsheet
func LoadXLSX(path string, opts LoadOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rec, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
	}
	t, err := fromRecords(rec, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func fromRecords(rec [][]string, opts LoadOptions) (*Table, error) {
	opts = opts.withDefaults()
	if len(rec) == 0 {
		return nil, fmt.Errorf("course table: empty: %w", ErrMissingColumn)
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
	itCol := idx(opts.ItineraryColumn)
	if itCol < 0 {
		return nil, fmt.Errorf("course table: %q: %w", opts.ItineraryColumn, ErrMissingColumn)
	}
	idCol := idx(opts.CourseIDColumn)
	if idCol < 0 {
		return nil, fmt.Errorf("course table: %q: %w", opts.CourseIDColumn, ErrMissingColumn)
	}
	t := &Table{Records: make([]Record, 0, len(rec)-1)}
	for i, row := range rec[1:] {
		t.Records = append(t.Records, Record{
			Itinerary: cell(row, itCol),
			CourseID:  cell(row, idCol),
			Line:      i + 2,
		})
	}
	return t, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
